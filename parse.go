// Copyright 2025 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package castfmt

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var powersOfTen = [...]int{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// timestampScale is the subsecond resolution of a parse result.
type timestampScale int

const (
	scaleMicros timestampScale = iota
	scaleNanos
)

func (timestampScale) SafeValue() {}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// trimUnicodeSpace returns the number of bytes of leading Unicode
// whitespace in s.
func trimUnicodeSpace(s string) int {
	trimmed := 0
	for trimmed < len(s) {
		r, size := utf8.DecodeRuneInString(s[trimmed:])
		if !unicode.IsSpace(r) {
			break
		}
		trimmed += size
	}
	return trimmed
}

// parseInt consumes leading ASCII digits of s, stopping at maxWidth digits
// or before the accumulated value would exceed max; greedy elements such as
// YYYY leave trailing digits for the next element this way. ok is false
// when fewer than minWidth digits are consumed or the value is below min.
func parseInt(s string, minWidth, maxWidth, min, max int) (value, consumed int, ok bool) {
	for consumed < len(s) && consumed < maxWidth {
		c := s[consumed]
		if c < '0' || c > '9' {
			break
		}
		next := value*10 + int(c-'0')
		if next > max {
			break
		}
		value = next
		consumed++
	}
	if consumed < minWidth || value < min {
		return 0, 0, false
	}
	return value, consumed, true
}

// parseYearRR expands a 1..2 digit year against currentYear using the ±50
// pivot on the last two digits: the century of currentYear moves up one when
// the parsed value is below 50 and currentYear's last two digits are 50 or
// more, and down one when the parsed value is 50 or more and those digits are
// below 50.
func parseYearRR(s string, currentYear int) (year, consumed int, ok bool) {
	yy, consumed, ok := parseInt(s, 1, 2, 0, 99)
	if !ok {
		return 0, 0, false
	}
	cc := currentYear / 100
	ccy := currentYear % 100
	if yy < 50 && ccy >= 50 {
		cc++
	} else if yy >= 50 && ccy < 50 {
		cc--
	}
	return cc*100 + yy, consumed, true
}

// parseYearComma parses the Y,YYY shape: one or two digits, a literal
// comma, then exactly three digits.
func parseYearComma(s string) (year, consumed int, ok bool) {
	high, n, ok := parseInt(s, 1, 2, 0, 10)
	if !ok {
		return 0, 0, false
	}
	consumed = n
	if !strings.HasPrefix(s[consumed:], ",") {
		return 0, 0, false
	}
	consumed++
	low, n, ok := parseInt(s[consumed:], 3, 3, 0, 999)
	if !ok {
		return 0, 0, false
	}
	return high*1000 + low, consumed + n, true
}

// parseMonthName matches an English month name prefix of s,
// case-insensitively; abbreviated matches the three-letter form.
func parseMonthName(s string, abbreviated bool) (month, consumed int, ok bool) {
	for i, name := range monthNames {
		if abbreviated {
			name = name[:3]
		}
		if len(s) >= len(name) && strings.EqualFold(s[:len(name)], name) {
			return i + 1, len(name), true
		}
	}
	return 0, 0, false
}

// parseMeridian matches AM or PM, dotted or plain; either value is
// accepted regardless of which form the format element used.
func parseMeridian(s string, dotted bool) (isPM bool, consumed int, ok bool) {
	want := 2
	if dotted {
		want = 4
	}
	if len(s) < want {
		return false, 0, false
	}
	prefix := s[:want]
	if dotted {
		if strings.EqualFold(prefix, "A.M.") {
			return false, want, true
		}
		if strings.EqualFold(prefix, "P.M.") {
			return true, want, true
		}
		return false, 0, false
	}
	if strings.EqualFold(prefix, "AM") {
		return false, want, true
	}
	if strings.EqualFold(prefix, "PM") {
		return true, want, true
	}
	return false, 0, false
}

// parseState carries the civil fields accumulated while consuming the
// input. Fields default from "now" in the default zone for the year and
// month; the day defaults to 1 and the clock to midnight.
type parseState struct {
	year, month, day  int
	hour, minute, sec int
	nanos             int

	// hour12 and the meridian are combined after the element loop; the
	// validator guarantees they travel together.
	hour12     int
	hasHour12  bool
	isPM       bool
	dayOfYear  int
	hasDayOfYr bool

	// Time zone offset parsed from TZH/TZM; tzNegative applies to both.
	tzNegative bool
	tzHour     int
	tzMinute   int
	hasTZ      bool
}

// parseElement consumes one element at the head of rest, mutating st.
// It returns the number of input bytes consumed, or -1 on mismatch.
func parseElement(e *formatElement, rest string, st *parseState) int {
	switch e.typ {
	case elemSimpleLiteral, elemDoubleQuotedLiteral:
		if strings.HasPrefix(rest, e.literal) {
			return len(e.literal)
		}

	case elemWhitespace:
		// One or more Unicode whitespace code points; zero is a parse
		// failure, not a no-op.
		if n := trimUnicodeSpace(rest); n > 0 {
			return n
		}

	case elemYYYY, elemRRRR:
		if v, n, ok := parseInt(rest, 1, 5, 0, 10000); ok {
			st.year = v
			return n
		}

	case elemYYY, elemYY, elemY:
		// Replace the last L digits of the current year, where L is the
		// element's width: with current year 1970, "YY" and input "12"
		// produce 1912.
		p10 := powersOfTen[e.lenInSource]
		if v, n, ok := parseInt(rest, 1, e.lenInSource, 0, p10-1); ok {
			st.year = st.year - st.year%p10 + v
			return n
		}

	case elemRR:
		if v, n, ok := parseYearRR(rest, st.year); ok {
			st.year = v
			return n
		}

	case elemYCommaYYY:
		if v, n, ok := parseYearComma(rest); ok {
			st.year = v
			return n
		}

	case elemMM:
		if v, n, ok := parseInt(rest, 1, 2, 1, 12); ok {
			st.month = v
			return n
		}

	case elemMON:
		if v, n, ok := parseMonthName(rest, true /* abbreviated */); ok {
			st.month = v
			return n
		}

	case elemMONTH:
		if v, n, ok := parseMonthName(rest, false /* abbreviated */); ok {
			st.month = v
			return n
		}

	case elemDD:
		if v, n, ok := parseInt(rest, 1, 2, 1, 31); ok {
			st.day = v
			return n
		}

	case elemDDD:
		// Day of year; resolved into month and day once the year is final.
		if v, n, ok := parseInt(rest, 1, 3, 1, 366); ok {
			st.dayOfYear = v
			st.hasDayOfYr = true
			return n
		}

	case elemHH, elemHH12:
		if v, n, ok := parseInt(rest, 1, 2, 1, 12); ok {
			st.hour12 = v
			st.hasHour12 = true
			return n
		}

	case elemHH24:
		if v, n, ok := parseInt(rest, 1, 2, 0, 23); ok {
			st.hour = v
			return n
		}

	case elemMI:
		if v, n, ok := parseInt(rest, 1, 2, 0, 59); ok {
			st.minute = v
			return n
		}

	case elemSS:
		if v, n, ok := parseInt(rest, 1, 2, 0, 59); ok {
			st.sec = v
			return n
		}

	case elemSSSSS:
		if v, n, ok := parseInt(rest, 1, 5, 0, 86399); ok {
			st.hour = v / 3600
			st.minute = v % 3600 / 60
			st.sec = v % 60
			return n
		}

	case elemFFN:
		// Up to n subsecond digits, scaled by the count actually present:
		// FF3 against "12" yields 120 milliseconds.
		max := powersOfTen[e.subsecondDigits] - 1
		if v, n, ok := parseInt(rest, 1, e.subsecondDigits, 0, max); ok {
			st.nanos = v * powersOfTen[9-n]
			return n
		}

	case elemAM, elemPM:
		if pm, n, ok := parseMeridian(rest, false /* dotted */); ok {
			st.isPM = pm
			return n
		}

	case elemAMDots, elemPMDots:
		if pm, n, ok := parseMeridian(rest, true /* dotted */); ok {
			st.isPM = pm
			return n
		}

	case elemTZH:
		off := 0
		if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
			st.tzNegative = rest[0] == '-'
			off = 1
		}
		if v, n, ok := parseInt(rest[off:], 1, 2, 0, 14); ok {
			st.tzHour = v
			st.hasTZ = true
			return off + n
		}

	case elemTZM:
		if v, n, ok := parseInt(rest, 1, 2, 0, 59); ok {
			st.tzMinute = v
			st.hasTZ = true
			return n
		}
	}
	return -1
}

// parseTimeWithElements consumes input under the validated element list and
// produces an instant.
func parseTimeWithElements(
	elements []formatElement,
	input string,
	defaultZone *time.Location,
	now time.Time,
	scale timestampScale,
) (time.Time, error) {
	nowCivil := now.In(defaultZone)
	st := parseState{
		year:  nowCivil.Year(),
		month: int(nowCivil.Month()),
		day:   1,
	}

	parsed := 0 // bytes of input consumed
	next := 0   // elements consumed
	failed := false

	parsed += trimUnicodeSpace(input)

	for !failed && parsed < len(input) && next < len(elements) {
		n := parseElement(&elements[next], input[parsed:], &st)
		if n < 0 {
			failed = true
		} else {
			next++
			parsed += n
		}
	}

	if failed {
		return time.Time{}, evalErrf(
			"Failed to parse input timestamp string at %d with format element %s",
			parsed, elements[next].DebugString())
	}

	parsed += trimUnicodeSpace(input[parsed:])

	// Trailing "" elements match the empty remainder.
	for next < len(elements) &&
		elements[next].typ == elemDoubleQuotedLiteral &&
		elements[next].literal == "" {
		next++
	}

	if parsed < len(input) {
		return time.Time{}, evalErrf(
			"Illegal non-space trailing data '%s' in timestamp string", input[parsed:])
	}
	if next < len(elements) {
		return time.Time{}, evalErrf(
			"Entire timestamp string has been parsed before dealing with format element %s",
			elements[next].DebugString())
	}

	if st.hasHour12 {
		st.hour = st.hour12 % 12
		if st.isPM {
			st.hour += 12
		}
	}

	if st.hasDayOfYr {
		jan1 := time.Date(st.year, time.January, 1, 0, 0, 0, 0, time.UTC)
		resolved := jan1.AddDate(0, 0, st.dayOfYear-1)
		if resolved.Year() != st.year {
			return time.Time{}, evalErrf(
				"Invalid result from year, month, day values after parsing")
		}
		st.month = int(resolved.Month())
		st.day = resolved.Day()
	}

	// Calendar normalization must be a no-op: the components are rebuilt in
	// UTC and compared against the inputs, which catches Feb 29 in a
	// non-leap year and similar overflow.
	check := time.Date(st.year, time.Month(st.month), st.day, 0, 0, 0, 0, time.UTC)
	if check.Year() != st.year || int(check.Month()) != st.month || check.Day() != st.day {
		return time.Time{}, evalErrf(
			"Invalid result from year, month, day values after parsing")
	}

	zone := defaultZone
	if st.hasTZ {
		offset := st.tzHour*3600 + st.tzMinute*60
		if st.tzNegative {
			offset = -offset
		}
		zone = time.FixedZone("", offset)
	}

	nanos := st.nanos
	if scale == scaleMicros {
		nanos -= nanos % 1000
	}
	out := time.Date(st.year, time.Month(st.month), st.day,
		st.hour, st.minute, st.sec, nanos, zone)
	if !IsValidTime(out) {
		return time.Time{}, evalErrf("The parsing result is out of valid time range")
	}
	return out, nil
}
