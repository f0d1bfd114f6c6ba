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
	"time"
)

// OutputType identifies the SQL type a format string targets.
type OutputType int

const (
	OutputDate OutputType = iota
	OutputTime
	OutputDatetime
	OutputTimestamp
)

// String implements fmt.Stringer; the names appear in diagnostics.
func (t OutputType) String() string {
	switch t {
	case OutputDate:
		return "DATE"
	case OutputTime:
		return "TIME"
	case OutputDatetime:
		return "DATETIME"
	case OutputTimestamp:
		return "TIMESTAMP"
	}
	return "UNKNOWN"
}

func (OutputType) SafeValue() {}

const (
	secondsPerDay = 24 * 60 * 60

	// minDateDays and maxDateDays bound the DATE type: 0001-01-01 through
	// 9999-12-31 as days since the Unix epoch.
	minDateDays = -719162
	maxDateDays = 2932896
)

// The supported absolute range: [0001-01-01, 10000-01-01) UTC.
var (
	minValidTime = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxValidTime = time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// IsValidTime reports whether t lies inside the supported absolute range.
func IsValidTime(t time.Time) bool {
	return !t.Before(minValidTime) && t.Before(maxValidTime)
}

// Date is a number of days since the Unix epoch.
type Date int32

// IsValid reports whether d falls in 0001-01-01 through 9999-12-31.
func (d Date) IsValid() bool {
	return d >= minDateDays && d <= maxDateDays
}

// midnight returns the date as a timestamp at midnight UTC on that day.
func (d Date) midnight() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// DateFromTime returns the Date holding t's calendar day in t's location.
func DateFromTime(t time.Time) Date {
	y, m, day := t.Date()
	return Date(time.Date(y, m, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

// Datetime is a zone-less civil datetime with nanosecond precision.
type Datetime struct {
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// IsValid reports whether every component is in range and the calendar day
// exists.
func (dt Datetime) IsValid() bool {
	if dt.Year < 1 || dt.Year > 9999 ||
		dt.Month < 1 || dt.Month > 12 ||
		dt.Day < 1 || dt.Day > 31 ||
		dt.Hour < 0 || dt.Hour > 23 ||
		dt.Minute < 0 || dt.Minute > 59 ||
		dt.Second < 0 || dt.Second > 59 ||
		dt.Nanosecond < 0 || dt.Nanosecond > 999999999 {
		return false
	}
	t := dt.toTime(time.UTC)
	return t.Day() == dt.Day && int(t.Month()) == dt.Month && t.Year() == dt.Year
}

func (dt Datetime) toTime(loc *time.Location) time.Time {
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day,
		dt.Hour, dt.Minute, dt.Second, dt.Nanosecond, loc)
}

// String renders the civil datetime for diagnostics.
func (dt Datetime) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
	if dt.Nanosecond != 0 {
		s += fmt.Sprintf(".%09d", dt.Nanosecond)
	}
	return s
}

// TimeOfDay is a zone-less civil time with nanosecond precision.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// IsValid reports whether every component is in range.
func (t TimeOfDay) IsValid() bool {
	return t.Hour >= 0 && t.Hour <= 23 &&
		t.Minute >= 0 && t.Minute <= 59 &&
		t.Second >= 0 && t.Second <= 59 &&
		t.Nanosecond >= 0 && t.Nanosecond <= 999999999
}

// onEpochDay places the time of day on 1970-01-01 UTC.
func (t TimeOfDay) onEpochDay() time.Time {
	return time.Date(1970, time.January, 1, t.Hour, t.Minute, t.Second, t.Nanosecond, time.UTC)
}

// String renders the civil time for diagnostics.
func (t TimeOfDay) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		s += fmt.Sprintf(".%09d", t.Nanosecond)
	}
	return s
}
