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
	"strconv"
	"strings"

	"github.com/cockroachdb/redact"
)

// elementType enumerates every format element the tokenizer can produce.
// The names mirror the element strings users write in format strings.
type elementType int

const (
	elemUnspecified elementType = iota

	// Literals.
	elemSimpleLiteral
	elemDoubleQuotedLiteral
	elemWhitespace

	// Year.
	elemYYYY
	elemYYY
	elemYY
	elemY
	elemRRRR
	elemRR
	elemYCommaYYY
	elemIYYY
	elemIYY
	elemIY
	elemI
	elemSYYYY
	elemYEAR
	elemSYEAR

	// Month.
	elemMM
	elemMON
	elemMONTH
	elemRM

	// Day.
	elemDDD
	elemDD
	elemD
	elemDAY
	elemDY
	elemJ

	// Hour.
	elemHH
	elemHH12
	elemHH24

	// Minute.
	elemMI

	// Second.
	elemSS
	elemSSSSS
	elemFFN

	// Meridian indicator.
	elemAM
	elemPM
	elemAMDots
	elemPMDots

	// Time zone.
	elemTZH
	elemTZM

	// Century.
	elemCC
	elemSCC

	// Quarter.
	elemQ

	// Week.
	elemIW
	elemWW
	elemW

	// Era indicator.
	elemAD
	elemBC
	elemADDots
	elemBCDots

	// Misc.
	elemSP
	elemTH
	elemSPTH
	elemTHSP
	elemFM
)

// elementCategory is the coarse grouping used by the structural validator.
type elementCategory int

const (
	catUnspecified elementCategory = iota
	catLiteral
	catYear
	catMonth
	catDay
	catHour
	catMinute
	catSecond
	catMeridianIndicator
	catTimeZone
	catCentury
	catQuarter
	catWeek
	catEraIndicator
	catMisc
)

// casingType selects how the rendered text of a non-literal element is
// re-cased, derived from the element's surface form in the user's format
// string.
type casingType int

const (
	casingUnspecified casingType = iota
	// casingPreserve leaves literal text exactly as written.
	casingPreserve
	casingAllUpper
	casingAllLower
	// casingFirstUpper capitalizes the first letter of each word; this is
	// what the strftime collaborator already produces for name elements, so
	// no post-processing is applied.
	casingFirstUpper
)

// String implements fmt.Stringer. The names match the catalog names used in
// user-visible diagnostics.
func (t elementType) String() string {
	switch t {
	case elemUnspecified:
		return "FORMAT_ELEMENT_TYPE_UNSPECIFIED"
	case elemSimpleLiteral:
		return "SIMPLE_LITERAL"
	case elemDoubleQuotedLiteral:
		return "DOUBLE_QUOTED_LITERAL"
	case elemWhitespace:
		return "WHITESPACE"
	case elemYYYY:
		return "YYYY"
	case elemYYY:
		return "YYY"
	case elemYY:
		return "YY"
	case elemY:
		return "Y"
	case elemRRRR:
		return "RRRR"
	case elemRR:
		return "RR"
	case elemYCommaYYY:
		return "Y,YYY"
	case elemIYYY:
		return "IYYY"
	case elemIYY:
		return "IYY"
	case elemIY:
		return "IY"
	case elemI:
		return "I"
	case elemSYYYY:
		return "SYYYY"
	case elemYEAR:
		return "YEAR"
	case elemSYEAR:
		return "SYEAR"
	case elemMM:
		return "MM"
	case elemMON:
		return "MON"
	case elemMONTH:
		return "MONTH"
	case elemRM:
		return "RM"
	case elemDDD:
		return "DDD"
	case elemDD:
		return "DD"
	case elemD:
		return "D"
	case elemDAY:
		return "DAY"
	case elemDY:
		return "DY"
	case elemJ:
		return "J"
	case elemHH:
		return "HH"
	case elemHH12:
		return "HH12"
	case elemHH24:
		return "HH24"
	case elemMI:
		return "MI"
	case elemSS:
		return "SS"
	case elemSSSSS:
		return "SSSSS"
	case elemFFN:
		return "FFN"
	case elemAM:
		return "AM"
	case elemPM:
		return "PM"
	case elemAMDots:
		return "A.M."
	case elemPMDots:
		return "P.M."
	case elemTZH:
		return "TZH"
	case elemTZM:
		return "TZM"
	case elemCC:
		return "CC"
	case elemSCC:
		return "SCC"
	case elemQ:
		return "Q"
	case elemIW:
		return "IW"
	case elemWW:
		return "WW"
	case elemW:
		return "W"
	case elemAD:
		return "AD"
	case elemBC:
		return "BC"
	case elemADDots:
		return "A.D."
	case elemBCDots:
		return "B.C."
	case elemSP:
		return "SP"
	case elemTH:
		return "TH"
	case elemSPTH:
		return "SPTH"
	case elemTHSP:
		return "THSP"
	case elemFM:
		return "FM"
	}
	return "FORMAT_ELEMENT_TYPE_UNSPECIFIED"
}

// category is the total mapping from element type to category.
func (t elementType) category() elementCategory {
	switch t {
	case elemSimpleLiteral, elemDoubleQuotedLiteral, elemWhitespace:
		return catLiteral
	case elemYYYY, elemYYY, elemYY, elemY, elemRRRR, elemRR, elemYCommaYYY,
		elemIYYY, elemIYY, elemIY, elemI, elemSYYYY, elemYEAR, elemSYEAR:
		return catYear
	case elemMM, elemMON, elemMONTH, elemRM:
		return catMonth
	case elemDDD, elemDD, elemD, elemDAY, elemDY, elemJ:
		return catDay
	case elemHH, elemHH12, elemHH24:
		return catHour
	case elemMI:
		return catMinute
	case elemSS, elemSSSSS, elemFFN:
		return catSecond
	case elemAM, elemPM, elemAMDots, elemPMDots:
		return catMeridianIndicator
	case elemTZH, elemTZM:
		return catTimeZone
	case elemCC, elemSCC:
		return catCentury
	case elemQ:
		return catQuarter
	case elemIW, elemWW, elemW:
		return catWeek
	case elemAD, elemBC, elemADDots, elemBCDots:
		return catEraIndicator
	case elemSP, elemTH, elemSPTH, elemTHSP, elemFM:
		return catMisc
	}
	return catUnspecified
}

// String implements fmt.Stringer. The names appear verbatim in diagnostics.
func (c elementCategory) String() string {
	switch c {
	case catLiteral:
		return "LITERAL"
	case catYear:
		return "YEAR"
	case catMonth:
		return "MONTH"
	case catDay:
		return "DAY"
	case catHour:
		return "HOUR"
	case catMinute:
		return "MINUTE"
	case catSecond:
		return "SECOND"
	case catMeridianIndicator:
		return "MERIDIAN_INDICATOR"
	case catTimeZone:
		return "TIME_ZONE"
	case catCentury:
		return "CENTURY"
	case catQuarter:
		return "QUARTER"
	case catWeek:
		return "WEEK"
	case catEraIndicator:
		return "ERA_INDICATOR"
	case catMisc:
		return "MISC"
	}
	return "FORMAT_ELEMENT_CATEGORY_UNSPECIFIED"
}

// formatElement is one atomic unit of a tokenized format string.
type formatElement struct {
	typ      elementType
	category elementCategory
	// lenInSource is the number of format-string characters the element
	// consumed. For Y/YY/YYY/YYYY it doubles as the semantic width, and for
	// whitespace elements it is the run length.
	lenInSource int
	// literal holds the bytes to emit or match for literal elements, after
	// unescaping for the double-quoted form.
	literal string
	// subsecondDigits is 1..9, set only for FFn.
	subsecondDigits int
	casing          casingType
}

// DebugString renders the element the way diagnostics refer to it: literal
// elements as '<literal>', whitespace as quoted spaces, FFn as 'FFn', and
// every other element as its quoted catalog name.
func (e formatElement) DebugString() string {
	switch e.typ {
	case elemSimpleLiteral:
		return "'" + e.literal + "'"
	case elemDoubleQuotedLiteral:
		return "'" + strconv.Quote(e.literal) + "'"
	case elemWhitespace:
		return "'" + strings.Repeat(" ", e.lenInSource) + "'"
	case elemFFN:
		return "'FF" + strconv.Itoa(e.subsecondDigits) + "'"
	default:
		return "'" + e.typ.String() + "'"
	}
}

// The enum values are fixed vocabulary and safe to report unredacted.
func (elementType) SafeValue()     {}
func (elementCategory) SafeValue() {}
func (casingType) SafeValue()      {}

var _ redact.SafeValue = elemUnspecified
var _ redact.SafeValue = catUnspecified
var _ redact.SafeValue = casingUnspecified
