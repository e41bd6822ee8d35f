package iso8601

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalid is returned by Parse for strings that are not ISO-8601 timestamps.
var ErrInvalid = errors.New("invalid ISO-8601 timestamp")

// Pattern is the validation expression. Submatches: year, month, day, hour,
// minute, second, fraction, zone.
var Pattern = regexp.MustCompile(
	`^(-?(?:[1-9][0-9]*)?[0-9]{4})-(1[0-2]|0[1-9])-(3[0-1]|0[1-9]|[1-2][0-9])` +
		`T(2[0-3]|[0-1][0-9]):([0-5][0-9]):([0-5][0-9])(\.[0-9]+)?` +
		`(Z|[+-](?:2[0-3]|[0-1][0-9]):[0-5][0-9])?$`,
)

const (
	zoneGroup = 8

	// layoutLocal is used for timestamps without a zone designator.
	layoutLocal = "2006-01-02T15:04:05.999999999"
)

// Valid reports whether s matches the ISO-8601 pattern.
func Valid(s string) bool {
	return Pattern.MatchString(s)
}

// Parse validates s and converts it to a time.Time. Timestamps without a zone
// designator are taken as UTC. Strings that match the pattern but cannot be
// represented, such as February 31st or five-digit years, return ErrInvalid.
func Parse(s string) (time.Time, error) {
	m := Pattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	var (
		t   time.Time
		err error
	)
	if m[zoneGroup] != "" {
		t, err = time.Parse(time.RFC3339Nano, s)
	} else {
		t, err = time.ParseInLocation(layoutLocal, s, time.UTC)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return t, nil
}
