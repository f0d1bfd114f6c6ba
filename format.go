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
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/lestrrat-go/strftime"
)

// strftimeSpec returns the conversion specifier for elements delegated to
// the strftime collaborator, or "" for elements the engine renders itself.
func strftimeSpec(typ elementType) string {
	switch typ {
	case elemMM:
		return "%m"
	case elemMON:
		return "%b"
	case elemMONTH:
		return "%B"
	case elemDD:
		return "%d"
	case elemDDD:
		return "%j"
	case elemDAY:
		return "%A"
	case elemDY:
		return "%a"
	case elemHH, elemHH12:
		return "%I"
	case elemHH24:
		return "%H"
	case elemMI:
		return "%M"
	case elemSS:
		return "%S"
	}
	return ""
}

// renderElement produces the primitive rendering of one element for the
// civil time t, before any casing adjustment. The strftime collaborator is
// handed at most one element's worth of pattern per call so that casing can
// be applied per element afterwards.
func renderElement(e *formatElement, t time.Time) (string, error) {
	if spec := strftimeSpec(e.typ); spec != "" {
		out, err := strftime.Format(spec, t)
		if err != nil {
			return "", errors.Wrapf(err, "formatting %s", e.DebugString())
		}
		return out, nil
	}

	switch e.typ {
	case elemSimpleLiteral, elemDoubleQuotedLiteral:
		return e.literal, nil

	case elemWhitespace:
		return strings.Repeat(" ", e.lenInSource), nil

	case elemYYYY, elemYYY, elemYY, elemY, elemRRRR, elemRR:
		// The last L digits of the year, zero-padded to the element width.
		// A four-digit element emits the whole year even when it exceeds
		// four digits.
		l := e.lenInSource
		year := t.Year()
		if l != 4 {
			year = year % powersOfTen[l]
		}
		return fmt.Sprintf("%0*d", l, year), nil

	case elemD:
		// Day of week numbered Sunday=1 through Saturday=7.
		return fmt.Sprintf("%d", int(t.Weekday())+1), nil

	case elemSSSSS:
		secondOfDay := t.Hour()*3600 + t.Minute()*60 + t.Second()
		return fmt.Sprintf("%05d", secondOfDay), nil

	case elemFFN:
		// n fractional-second digits, truncated rather than rounded.
		frac := t.Nanosecond() / powersOfTen[9-e.subsecondDigits]
		return fmt.Sprintf("%0*d", e.subsecondDigits, frac), nil

	case elemAM, elemPM:
		// Wall-clock hour 12 renders as AM for compatibility with existing
		// consumers of this dialect.
		if t.Hour() > 12 {
			return "PM", nil
		}
		return "AM", nil

	case elemAMDots, elemPMDots:
		if t.Hour() > 12 {
			return "P.M.", nil
		}
		return "A.M.", nil

	case elemTZH:
		sign, hours, _ := zoneOffsetParts(t)
		return fmt.Sprintf("%c%02d", sign, hours), nil

	case elemTZM:
		_, _, minutes := zoneOffsetParts(t)
		return fmt.Sprintf("%02d", minutes), nil
	}

	return "", validationErrf("Unsupported format element %s", e.DebugString())
}

// zoneOffsetParts decomposes t's zone offset into a sign character and
// non-negative hour and minute components.
func zoneOffsetParts(t time.Time) (sign byte, hours, minutes int) {
	_, offset := t.Zone()
	sign = '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return sign, offset / 3600, (offset % 3600) / 60
}

// applyCasing re-cases a non-literal element's rendering per its surface
// form in the format string. First-letter-uppercase needs no work: name
// elements already render capitalized.
func applyCasing(s string, casing casingType) string {
	switch casing {
	case casingAllUpper:
		return strings.ToUpper(s)
	case casingAllLower:
		return strings.ToLower(s)
	default:
		return s
	}
}

// formatTimeWithElements renders the instant t, observed in zone, through
// the element list.
func formatTimeWithElements(
	elements []formatElement, t time.Time, zone *time.Location,
) (string, error) {
	if !IsValidTime(t) {
		return "", evalErrf("Invalid timestamp value: %d", t.UnixMicro())
	}
	civil := t.In(zone)
	var sb strings.Builder
	for i := range elements {
		e := &elements[i]
		out, err := renderElement(e, civil)
		if err != nil {
			return "", err
		}
		if e.category != catLiteral {
			out = applyCasing(out, e.casing)
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}
