// Package dateformat renders time values by symbolic name instead of by
// literal layout.
//
// A [Registry] maps format keys such as "short" or "month_and_year" to a
// [Rule]. Rules form a closed set:
//
//	dateformat.Pattern("%Y-%m-%d %H:%M:%S")          // strftime-style literal pattern
//	dateformat.OrdinalDayAndMonth{}                  // "March 5th"
//	dateformat.OrdinalDayAndMonth{IncludeYear: true} // "March 5th, 2024"
//	dateformat.ISO8601{}                             // "2024-03-05T13:45:30Z"
//
// Registries are constructed explicitly and owned by whoever formats dates;
// there is no package-level registry:
//
//	reg := dateformat.NewDefaultRegistry()
//	_ = reg.Register("mine", dateformat.Pattern("%Y-%m-%d %H:%M:%S"))
//	s, err := reg.Format(time.Now(), "mine")
//
// Registering a key that already exists replaces its rule. A Registry is safe
// for concurrent use.
//
// # Patterns
//
// Patterns use strftime(3) conversion specifications. See [Strftime] for the
// supported directives.
package dateformat
