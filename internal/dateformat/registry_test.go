package dateformat

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestRegisterAndFormat(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if err := reg.Register("mine", Pattern("%Y-%m-%d %H:%M:%S")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	ts := time.Date(2024, time.March, 5, 13, 45, 30, 0, time.UTC)
	first, err := reg.Format(ts, "mine")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if first != "2024-03-05 13:45:30" {
		t.Errorf("Format = %q, want %q", first, "2024-03-05 13:45:30")
	}

	second, err := reg.Format(ts, "mine")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if first != second {
		t.Errorf("repeated Format differs: %q vs %q", first, second)
	}
}

func TestRegisterReplaces(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	ts := time.Date(2024, time.March, 5, 13, 45, 30, 0, time.UTC)

	if err := reg.Register("k", Pattern("%Y")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := reg.Register("k", OrdinalDayAndMonth{}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := reg.Format(ts, "k")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "March 5th" {
		t.Errorf("Format = %q, want %q", got, "March 5th")
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}
}

func TestRegisterInvalid(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	if err := reg.Register("", Pattern("%Y")); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Register(\"\") error = %v, want ErrEmptyKey", err)
	}
	if err := reg.Register("k", nil); !errors.Is(err, ErrNilRule) {
		t.Errorf("Register(nil) error = %v, want ErrNilRule", err)
	}
	if reg.Len() != 0 {
		t.Errorf("Len = %d after failed registrations, want 0", reg.Len())
	}
}

func TestFormatErrors(t *testing.T) {
	t.Parallel()

	reg := NewDefaultRegistry()

	if _, err := reg.Format(time.Now(), "does_not_exist"); !errors.Is(err, ErrUnknownFormatKey) {
		t.Errorf("unknown key error = %v, want ErrUnknownFormatKey", err)
	}
	if _, err := reg.Format(time.Time{}, "db"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("zero time error = %v, want ErrInvalidValue", err)
	}
}

func TestShortOrdinal(t *testing.T) {
	t.Parallel()

	reg := NewDefaultRegistry()

	tests := []struct {
		day  int
		want string
	}{
		{1, "March 1st"},
		{2, "March 2nd"},
		{3, "March 3rd"},
		{4, "March 4th"},
		{11, "March 11th"},
		{12, "March 12th"},
		{13, "March 13th"},
		{21, "March 21st"},
		{22, "March 22nd"},
		{23, "March 23rd"},
		{31, "March 31st"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			ts := time.Date(2024, time.March, tt.day, 9, 0, 0, 0, time.UTC)
			got, err := reg.Format(ts, "short_ordinal")
			if err != nil {
				t.Fatalf("Format failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("short_ordinal day %d = %q, want %q", tt.day, got, tt.want)
			}
		})
	}
}

func TestDefaultRules(t *testing.T) {
	t.Parallel()

	reg := NewDefaultRegistry()
	ts := time.Date(2024, time.March, 5, 13, 45, 30, 0, time.UTC)

	tests := []struct {
		key  string
		want string
	}{
		{"db", "2024-03-05 13:45:30"},
		{"number", "20240305134530"},
		{"time", "13:45"},
		{"short", "05 Mar 13:45"},
		{"long", "March 05, 2024 13:45"},
		{"rfc822", "Tue, 05 Mar 2024 13:45:30 +0000"},
		{"iso8601", "2024-03-05T13:45:30Z"},
		{"long_ordinal", "March 5th, 2024"},
		{"short_ordinal", "March 5th"},
		{"mine", "2024-03-05 13:45:30"},
		{"month_and_year", "March 2024"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			got, err := reg.Format(ts, tt.key)
			if err != nil {
				t.Fatalf("Format(%q) failed: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if reg.Len() != len(DefaultRules()) {
		t.Errorf("Len = %d, want %d", reg.Len(), len(DefaultRules()))
	}
}

func TestDefaultRegistriesAreIndependent(t *testing.T) {
	t.Parallel()

	a := NewDefaultRegistry()
	b := NewDefaultRegistry()

	if err := a.Register("short", Pattern("%Y")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	rule, ok := b.Lookup("short")
	if !ok {
		t.Fatal("short missing from second registry")
	}
	if rule.String() != "%d %b %H:%M" {
		t.Errorf("second registry short = %q, want the built-in pattern", rule.String())
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	reg := NewDefaultRegistry()

	got, err := reg.FormatString("2024-03-05T13:45:30+02:00", "rfc822")
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}
	if got != "Tue, 05 Mar 2024 13:45:30 +0200" {
		t.Errorf("FormatString = %q", got)
	}

	if _, err := reg.FormatString("2024-03-05 13:45:30", "db"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("missing T error = %v, want ErrInvalidValue", err)
	}
	if _, err := reg.FormatString("2024-03-05T13:45:30Z", "nope"); !errors.Is(err, ErrUnknownFormatKey) {
		t.Errorf("unknown key error = %v, want ErrUnknownFormatKey", err)
	}
}

func TestKeysAndEntries(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, k := range []string{"b", "c", "a"} {
		if err := reg.Register(k, Pattern("%Y")); err != nil {
			t.Fatalf("Register(%q) failed: %v", k, err)
		}
	}

	keys := reg.Keys()
	want := []string{"a", "b", "c"}
	if len(keys) != len(want) {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	entries := reg.Entries()
	if len(entries) != 3 || entries[0].Key != "a" || entries[2].Key != "c" {
		t.Errorf("Entries not ordered by key: %+v", entries)
	}
}

func TestRuleKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rule Rule
		kind RuleKind
		desc string
	}{
		{Pattern("%B %Y"), KindPattern, "%B %Y"},
		{OrdinalDayAndMonth{}, KindOrdinalDayAndMonth, "%B <ordinal day>"},
		{OrdinalDayAndMonth{IncludeYear: true}, KindOrdinalDayAndMonth, "%B <ordinal day>, %Y"},
		{ISO8601{}, KindISO8601, "%Y-%m-%dT%H:%M:%S%:z"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()
			if tt.rule.Kind() != tt.kind {
				t.Errorf("Kind = %q, want %q", tt.rule.Kind(), tt.kind)
			}
			if tt.rule.String() != tt.desc {
				t.Errorf("String = %q, want %q", tt.rule.String(), tt.desc)
			}
		})
	}
}

func TestConcurrentRegisterAndFormat(t *testing.T) {
	t.Parallel()

	reg := NewDefaultRegistry()
	ts := time.Date(2024, time.March, 5, 13, 45, 30, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("k%d", i), Pattern("%Y"))
		}(i)
		go func() {
			defer wg.Done()
			if _, err := reg.Format(ts, "db"); err != nil {
				t.Errorf("Format failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if reg.Len() != len(DefaultRules())+20 {
		t.Errorf("Len = %d, want %d", reg.Len(), len(DefaultRules())+20)
	}
}
