package dateformat

import (
	"strconv"
	"strings"
	"time"
)

// Strftime formats t according to a strftime(3)-style pattern.
//
// Supported conversions:
//
//	%Y year (at least 4 digits)      %C century          %y year without century
//	%m month 01-12                   %B full month name  %b, %h abbreviated month name
//	%d day 01-31                     %e day, space padded
//	%j day of year 001-366
//	%H hour 00-23                    %k hour, space padded
//	%I hour 01-12                    %l hour 1-12, space padded
//	%M minute 00-59                  %S second 00-60
//	%L milliseconds 000-999          %N nanoseconds
//	%p AM/PM                         %P am/pm
//	%A full weekday name             %a abbreviated weekday name
//	%u weekday 1-7, Monday is 1      %w weekday 0-6, Sunday is 0
//	%z +hhmm offset                  %:z +hh:mm offset   %Z zone abbreviation
//	%s seconds since the Unix epoch
//	%F %Y-%m-%d   %T %H:%M:%S   %D %m/%d/%y   %R %H:%M
//	%n newline    %t tab        %% literal percent
//
// Numeric conversions accept the flags "-" (no padding), "_" (space padding)
// and "0" (zero padding). The "^" flag upper-cases the result. Unknown
// conversions are copied to the output unchanged.
func Strftime(pattern string, t time.Time) string {
	var b strings.Builder
	b.Grow(len(pattern) + 16)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			b.WriteByte(c)
			continue
		}

		j := i + 1
		var flag byte
		upper := false
	flags:
		for ; j < len(pattern); j++ {
			switch pattern[j] {
			case '-', '_', '0':
				flag = pattern[j]
			case '^':
				upper = true
			default:
				break flags
			}
		}

		colon := false
		if j < len(pattern) && pattern[j] == ':' {
			colon = true
			j++
		}
		if j >= len(pattern) {
			b.WriteString(pattern[i:])
			break
		}

		s, ok := convert(pattern[j], flag, colon, t)
		if !ok {
			b.WriteString(pattern[i : j+1])
			i = j
			continue
		}
		if upper {
			s = strings.ToUpper(s)
		}
		b.WriteString(s)
		i = j
	}

	return b.String()
}

func convert(verb, flag byte, colon bool, t time.Time) (string, bool) {
	if colon && verb != 'z' {
		return "", false
	}

	switch verb {
	case 'Y':
		return padInt(t.Year(), 4, '0', flag), true
	case 'C':
		return padInt(t.Year()/100, 2, '0', flag), true
	case 'y':
		return padInt(t.Year()%100, 2, '0', flag), true
	case 'm':
		return padInt(int(t.Month()), 2, '0', flag), true
	case 'B':
		return t.Month().String(), true
	case 'b', 'h':
		return t.Month().String()[:3], true
	case 'd':
		return padInt(t.Day(), 2, '0', flag), true
	case 'e':
		return padInt(t.Day(), 2, ' ', flag), true
	case 'j':
		return padInt(t.YearDay(), 3, '0', flag), true
	case 'H':
		return padInt(t.Hour(), 2, '0', flag), true
	case 'k':
		return padInt(t.Hour(), 2, ' ', flag), true
	case 'I':
		return padInt(hour12(t), 2, '0', flag), true
	case 'l':
		return padInt(hour12(t), 2, ' ', flag), true
	case 'M':
		return padInt(t.Minute(), 2, '0', flag), true
	case 'S':
		return padInt(t.Second(), 2, '0', flag), true
	case 'L':
		return padInt(t.Nanosecond()/int(time.Millisecond), 3, '0', flag), true
	case 'N':
		return padInt(t.Nanosecond(), 9, '0', flag), true
	case 'p':
		if t.Hour() < 12 {
			return "AM", true
		}
		return "PM", true
	case 'P':
		if t.Hour() < 12 {
			return "am", true
		}
		return "pm", true
	case 'A':
		return t.Weekday().String(), true
	case 'a':
		return t.Weekday().String()[:3], true
	case 'u':
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		return strconv.Itoa(wd), true
	case 'w':
		return strconv.Itoa(int(t.Weekday())), true
	case 'z':
		return zoneOffset(t, colon), true
	case 'Z':
		return t.Format("MST"), true
	case 's':
		return strconv.FormatInt(t.Unix(), 10), true
	case 'F':
		return Strftime("%Y-%m-%d", t), true
	case 'T':
		return Strftime("%H:%M:%S", t), true
	case 'D':
		return Strftime("%m/%d/%y", t), true
	case 'R':
		return Strftime("%H:%M", t), true
	case 'n':
		return "\n", true
	case 't':
		return "\t", true
	case '%':
		return "%", true
	}

	return "", false
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

// padInt left-pads v to width using pad, unless flag overrides the padding.
func padInt(v, width int, pad, flag byte) string {
	switch flag {
	case '-':
		return strconv.Itoa(v)
	case '_':
		pad = ' '
	case '0':
		pad = '0'
	}

	neg := v < 0
	if neg {
		v = -v
		width--
	}

	s := strconv.Itoa(v)
	if n := width - len(s); n > 0 {
		s = strings.Repeat(string(pad), n) + s
	}
	if neg {
		s = "-" + s
	}
	return s
}

func zoneOffset(t time.Time, colon bool) string {
	_, offset := t.Zone()
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	hh := padInt(offset/3600, 2, '0', 0)
	mm := padInt((offset%3600)/60, 2, '0', 0)

	if colon {
		return string(sign) + hh + ":" + mm
	}
	return string(sign) + hh + mm
}
