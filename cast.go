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

// Package castfmt implements the format-element engine behind SQL casts of
// the shape CAST(string AS TIMESTAMP FORMAT fmt) and CAST(ts AS STRING
// FORMAT fmt), and their DATE, TIME and DATETIME variants.
//
// A format string is a sequence of format elements such as YYYY, MM, HH24,
// A.M., FF6, quoted literals and punctuation. The engine tokenizes the
// format string, validates the element combination for the target type,
// and then either parses an input string into an instant or renders an
// instant into text. It holds no state across calls beyond immutable
// tables; every operation is synchronous and re-entrant.
package castfmt

import (
	"time"
	"unicode/utf8"
)

func checkUTF8Input(s string) error {
	if !utf8.ValidString(s) {
		return validationErrf("Input string is not valid UTF-8")
	}
	return nil
}

// castStringToTimestamp is the shared body of the parse entry points.
func castStringToTimestamp(
	cache *FormatCache,
	format, input string,
	defaultZone *time.Location,
	now time.Time,
	scale timestampScale,
) (time.Time, error) {
	if err := checkUTF8Input(input); err != nil {
		return time.Time{}, err
	}
	if err := checkUTF8Input(format); err != nil {
		return time.Time{}, err
	}
	elements, err := cache.tokenize(format)
	if err != nil {
		return time.Time{}, err
	}
	if err := validateElementsForParsing(elements, nil, OutputTimestamp); err != nil {
		return time.Time{}, err
	}
	return parseTimeWithElements(elements, input, defaultZone, now, scale)
}

// CastStringToTimestamp parses input under the format string into an
// instant at nanosecond resolution. Civil fields absent from the format
// default from now observed in defaultZone (year and month; the day
// defaults to 1 and the clock to midnight).
func CastStringToTimestamp(
	format, input string, defaultZone *time.Location, now time.Time,
) (time.Time, error) {
	return castStringToTimestamp(nil, format, input, defaultZone, now, scaleNanos)
}

// CastStringToTimestampInZone is CastStringToTimestamp with the default
// zone supplied by name.
func CastStringToTimestampInZone(
	format, input, zoneName string, now time.Time,
) (time.Time, error) {
	if err := checkUTF8Input(zoneName); err != nil {
		return time.Time{}, err
	}
	zone, err := loadZone(zoneName)
	if err != nil {
		return time.Time{}, err
	}
	return CastStringToTimestamp(format, input, zone, now)
}

// CastStringToTimestampMicros parses input under the format string into
// microseconds since the Unix epoch.
func CastStringToTimestampMicros(
	format, input string, defaultZone *time.Location, now time.Time,
) (int64, error) {
	t, err := castStringToTimestamp(nil, format, input, defaultZone, now, scaleMicros)
	if err != nil {
		return 0, err
	}
	return t.UnixMicro(), nil
}

// CastStringToTimestampMicrosInZone is CastStringToTimestampMicros with the
// default zone supplied by name.
func CastStringToTimestampMicrosInZone(
	format, input, zoneName string, now time.Time,
) (int64, error) {
	if err := checkUTF8Input(zoneName); err != nil {
		return 0, err
	}
	zone, err := loadZone(zoneName)
	if err != nil {
		return 0, err
	}
	return CastStringToTimestampMicros(format, input, zone, now)
}

// ValidateFormatStringForParsing reports whether the format string is valid
// for parsing into outputType. Only TIMESTAMP is currently parseable.
func ValidateFormatStringForParsing(format string, outputType OutputType) error {
	if err := checkUTF8Input(format); err != nil {
		return err
	}
	elements, err := tokenizeFormat(format)
	if err != nil {
		return err
	}
	if outputType != OutputTimestamp {
		return validationErrf("Unsupported output type for validation")
	}
	return validateElementsForParsing(elements, nil, OutputTimestamp)
}

// ValidateFormatStringForFormatting reports whether the format string is
// valid for rendering a value of outputType.
func ValidateFormatStringForFormatting(format string, outputType OutputType) error {
	if !utf8.ValidString(format) {
		return validationErrf("Format string is not a valid UTF-8 string.")
	}
	elements, err := tokenizeFormat(format)
	if err != nil {
		return err
	}
	return validateElementsForFormatting(elements, outputType)
}

// CastFormatDateToString renders a date through the format string.
func CastFormatDateToString(format string, date Date) (string, error) {
	if !utf8.ValidString(format) {
		return "", validationErrf("Format string is not a valid UTF-8 string.")
	}
	if !date.IsValid() {
		return "", evalErrf("Invalid date value: %d", int32(date))
	}
	elements, err := tokenizeFormat(format)
	if err != nil {
		return "", err
	}
	if err := validateElementsForFormatting(elements, OutputDate); err != nil {
		return "", err
	}
	// A date formats as a timestamp at midnight UTC on that day.
	return formatTimeWithElements(elements, date.midnight(), time.UTC)
}

// CastFormatDatetimeToString renders a civil datetime through the format
// string.
func CastFormatDatetimeToString(format string, dt Datetime) (string, error) {
	if !utf8.ValidString(format) {
		return "", validationErrf("Format string is not a valid UTF-8 string.")
	}
	if !dt.IsValid() {
		return "", evalErrf("Invalid datetime value: %s", dt)
	}
	elements, err := tokenizeFormat(format)
	if err != nil {
		return "", err
	}
	if err := validateElementsForFormatting(elements, OutputDatetime); err != nil {
		return "", err
	}
	return formatTimeWithElements(elements, dt.toTime(time.UTC), time.UTC)
}

// CastFormatTimeToString renders a civil time of day through the format
// string.
func CastFormatTimeToString(format string, tod TimeOfDay) (string, error) {
	if !utf8.ValidString(format) {
		return "", validationErrf("Format string is not a valid UTF-8 string.")
	}
	if !tod.IsValid() {
		return "", evalErrf("Invalid time value: %s", tod)
	}
	elements, err := tokenizeFormat(format)
	if err != nil {
		return "", err
	}
	if err := validateElementsForFormatting(elements, OutputTime); err != nil {
		return "", err
	}
	return formatTimeWithElements(elements, tod.onEpochDay(), time.UTC)
}

// castFormatTimestampToString is the shared body of the timestamp
// formatting entry points. As with the other SQL engines implementing this
// dialect, the element list is not pre-validated for TIMESTAMP output;
// elements with no rendering fail at render time.
func castFormatTimestampToString(
	cache *FormatCache, format string, t time.Time, zone *time.Location,
) (string, error) {
	if !utf8.ValidString(format) {
		return "", validationErrf("Format string is not a valid UTF-8 string.")
	}
	elements, err := cache.tokenize(format)
	if err != nil {
		return "", err
	}
	return formatTimeWithElements(elements, t, zone)
}

// CastFormatTimestampToString renders an instant, observed in zone, through
// the format string.
func CastFormatTimestampToString(
	format string, t time.Time, zone *time.Location,
) (string, error) {
	return castFormatTimestampToString(nil, format, t, zone)
}

// CastFormatTimestampToStringInZone is CastFormatTimestampToString with the
// zone supplied by name.
func CastFormatTimestampToStringInZone(
	format string, t time.Time, zoneName string,
) (string, error) {
	if !utf8.ValidString(format) {
		return "", validationErrf("Format string is not a valid UTF-8 string.")
	}
	if !utf8.ValidString(zoneName) {
		return "", validationErrf("Timezone string is not a valid UTF-8 string.")
	}
	zone, err := loadZone(zoneName)
	if err != nil {
		return "", err
	}
	return CastFormatTimestampToString(format, t, zone)
}

// CastFormatTimestampMicrosToString renders a microsecond Unix timestamp,
// observed in zone, through the format string.
func CastFormatTimestampMicrosToString(
	format string, micros int64, zone *time.Location,
) (string, error) {
	return CastFormatTimestampToString(format, time.UnixMicro(micros).UTC(), zone)
}

// CastFormatTimestampMicrosToStringInZone is CastFormatTimestampMicrosToString
// with the zone supplied by name.
func CastFormatTimestampMicrosToStringInZone(
	format string, micros int64, zoneName string,
) (string, error) {
	return CastFormatTimestampToStringInZone(format, time.UnixMicro(micros).UTC(), zoneName)
}
