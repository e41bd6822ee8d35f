package dateformat

// DefaultRules returns the built-in named formats. The returned map is a fresh
// copy on each call.
func DefaultRules() map[string]Rule {
	return map[string]Rule{
		"db":             Pattern("%Y-%m-%d %H:%M:%S"),
		"number":         Pattern("%Y%m%d%H%M%S"),
		"time":           Pattern("%H:%M"),
		"short":          Pattern("%d %b %H:%M"),
		"long":           Pattern("%B %d, %Y %H:%M"),
		"rfc822":         Pattern("%a, %d %b %Y %H:%M:%S %z"),
		"iso8601":        ISO8601{},
		"long_ordinal":   OrdinalDayAndMonth{IncludeYear: true},
		"short_ordinal":  OrdinalDayAndMonth{},
		"mine":           Pattern("%Y-%m-%d %H:%M:%S"),
		"month_and_year": Pattern("%B %Y"),
	}
}
