package dateformat

import (
	"strings"
	"time"
)

// RuleKind names a Rule variant.
type RuleKind string

const (
	// KindPattern is a literal strftime-style pattern.
	KindPattern RuleKind = "pattern"
	// KindOrdinalDayAndMonth renders "<Month> <ordinal day>".
	KindOrdinalDayAndMonth RuleKind = "ordinal_day_and_month"
	// KindISO8601 renders an XML schema timestamp.
	KindISO8601 RuleKind = "iso8601"
)

// Rule renders a time value. The set of implementations is closed to this
// package: Pattern, OrdinalDayAndMonth and ISO8601.
type Rule interface {
	// Render formats t. It never fails; value validation happens in Registry.
	Render(t time.Time) string
	// Kind reports which variant the rule is.
	Kind() RuleKind
	// String returns a human-readable description of the rule.
	String() string

	sealed()
}

// Pattern is a literal strftime-style pattern such as "%B %Y".
type Pattern string

// Render implements Rule.
func (p Pattern) Render(t time.Time) string { return Strftime(string(p), t) }

// Kind implements Rule.
func (Pattern) Kind() RuleKind { return KindPattern }

func (p Pattern) String() string { return string(p) }

func (Pattern) sealed() {}

// OrdinalDayAndMonth renders the full month name followed by the ordinal day,
// e.g. "March 21st". With IncludeYear it appends ", 2024".
type OrdinalDayAndMonth struct {
	IncludeYear bool
}

// Render implements Rule.
func (o OrdinalDayAndMonth) Render(t time.Time) string {
	var b strings.Builder
	b.WriteString(t.Month().String())
	b.WriteByte(' ')
	b.WriteString(Ordinalize(t.Day()))
	if o.IncludeYear {
		b.WriteString(", ")
		b.WriteString(Strftime("%Y", t))
	}
	return b.String()
}

// Kind implements Rule.
func (OrdinalDayAndMonth) Kind() RuleKind { return KindOrdinalDayAndMonth }

func (o OrdinalDayAndMonth) String() string {
	if o.IncludeYear {
		return "%B <ordinal day>, %Y"
	}
	return "%B <ordinal day>"
}

func (OrdinalDayAndMonth) sealed() {}

// ISO8601 renders t as an XML schema timestamp: "Z" for UTC, otherwise a
// "+hh:mm" offset. Fractional seconds are dropped.
type ISO8601 struct{}

// Render implements Rule.
func (ISO8601) Render(t time.Time) string { return t.Format(time.RFC3339) }

// Kind implements Rule.
func (ISO8601) Kind() RuleKind { return KindISO8601 }

func (ISO8601) String() string { return "%Y-%m-%dT%H:%M:%S%:z" }

func (ISO8601) sealed() {}
