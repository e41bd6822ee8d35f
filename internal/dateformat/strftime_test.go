package dateformat

import (
	"testing"
	"time"
)

func TestStrftime(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.March, 5, 13, 45, 30, 123456789, time.UTC)
	cet := time.FixedZone("CET", 3600)
	ist := time.FixedZone("IST", -(3*3600 + 30*60))

	tests := []struct {
		name    string
		pattern string
		t       time.Time
		want    string
	}{
		{name: "full timestamp", pattern: "%Y-%m-%d %H:%M:%S", t: ts, want: "2024-03-05 13:45:30"},
		{name: "month and year", pattern: "%B %Y", t: ts, want: "March 2024"},
		{name: "abbreviations", pattern: "%a %b %h", t: ts, want: "Tue Mar Mar"},
		{name: "full weekday", pattern: "%A", t: ts, want: "Tuesday"},
		{name: "century and short year", pattern: "%C %y", t: ts, want: "20 24"},
		{name: "space padded day", pattern: "%e", t: ts, want: " 5"},
		{name: "no padding flag", pattern: "%-d/%-m", t: ts, want: "5/3"},
		{name: "space padding flag", pattern: "%_m", t: ts, want: " 3"},
		{name: "day of year", pattern: "%j", t: ts, want: "065"},
		{name: "12 hour clock", pattern: "%I:%M %p", t: ts, want: "01:45 PM"},
		{name: "lower am pm", pattern: "%l%P", t: ts, want: " 1pm"},
		{name: "midnight is 12 AM", pattern: "%I %p", t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), want: "12 AM"},
		{name: "space padded hour", pattern: "%k", t: time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC), want: " 7"},
		{name: "milliseconds", pattern: "%L", t: ts, want: "123"},
		{name: "nanoseconds", pattern: "%N", t: ts, want: "123456789"},
		{name: "weekday numbers", pattern: "%u %w", t: ts, want: "2 2"},
		{name: "sunday numbers", pattern: "%u %w", t: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), want: "7 0"},
		{name: "UTC offset", pattern: "%z %:z %Z", t: ts, want: "+0000 +00:00 UTC"},
		{name: "positive offset", pattern: "%z", t: ts.In(cet), want: "+0100"},
		{name: "negative half hour offset", pattern: "%:z", t: ts.In(ist), want: "-03:30"},
		{name: "unix seconds", pattern: "%s", t: time.Unix(1700000000, 0).UTC(), want: "1700000000"},
		{name: "composites", pattern: "%F %T", t: ts, want: "2024-03-05 13:45:30"},
		{name: "short composites", pattern: "%D %R", t: ts, want: "03/05/24 13:45"},
		{name: "upper flag", pattern: "%^B", t: ts, want: "MARCH"},
		{name: "literal percent", pattern: "100%%", t: ts, want: "100%"},
		{name: "whitespace", pattern: "%n%t", t: ts, want: "\n\t"},
		{name: "unknown directive kept", pattern: "%Q-%Y", t: ts, want: "%Q-2024"},
		{name: "colon on non zone kept", pattern: "%:Y", t: ts, want: "%:Y"},
		{name: "trailing percent", pattern: "%Y%", t: ts, want: "2024%"},
		{name: "dangling flag", pattern: "%Y %-", t: ts, want: "2024 %-"},
		{name: "padded small year", pattern: "%Y", t: time.Date(5, 1, 1, 0, 0, 0, 0, time.UTC), want: "0005"},
		{name: "plain text", pattern: "no directives", t: ts, want: "no directives"},
		{name: "empty pattern", pattern: "", t: ts, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Strftime(tt.pattern, tt.t); got != tt.want {
				t.Errorf("Strftime(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}
