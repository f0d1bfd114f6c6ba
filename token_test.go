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
	"testing"

	"github.com/stretchr/testify/require"
)

func elementTypes(elements []formatElement) []elementType {
	types := make([]elementType, len(elements))
	for i := range elements {
		types[i] = elements[i].typ
	}
	return types
}

func TestTokenizeMaximalMunch(t *testing.T) {
	testCases := []struct {
		format string
		types  []elementType
	}{
		{"Y", []elementType{elemY}},
		{"YY", []elementType{elemYY}},
		{"YYY", []elementType{elemYYY}},
		{"YYYY", []elementType{elemYYYY}},
		{"YYYYY", []elementType{elemYYYY, elemY}},
		{"RR", []elementType{elemRR}},
		{"RRRR", []elementType{elemRRRR}},
		{"Y,YYY", []elementType{elemYCommaYYY}},
		{"A.M.", []elementType{elemAMDots}},
		{"AM", []elementType{elemAM}},
		{"HH24", []elementType{elemHH24}},
		{"HH12", []elementType{elemHH12}},
		{"HHMI", []elementType{elemHH, elemMI}},
		{"SSSSS", []elementType{elemSSSSS}},
		{"SSSSSSS", []elementType{elemSSSSS, elemSS}},
		{"MONTH", []elementType{elemMONTH}},
		{"MONMM", []elementType{elemMON, elemMM}},
		{"SYYYY", []elementType{elemSYYYY}},
		{"YYYY-MM-DD", []elementType{
			elemYYYY, elemSimpleLiteral, elemMM, elemSimpleLiteral, elemDD}},
	}
	for _, tc := range testCases {
		elements, err := tokenizeFormat(tc.format)
		require.NoError(t, err, tc.format)
		require.Equal(t, tc.types, elementTypes(elements), tc.format)
	}
}

func TestTokenizeLengthCoverage(t *testing.T) {
	// The consumed lengths of the elements always add back up to the
	// format string length.
	for _, format := range []string{
		"YYYY-MM-DD HH24:MI:SS",
		`YYYY "escaped \" and \\" MM`,
		"   Y,YYY   ",
		"Mon ddth, yyyy",
		"FF1FF9",
	} {
		elements, err := tokenizeFormat(format)
		require.NoError(t, err, format)
		total := 0
		for _, e := range elements {
			total += e.lenInSource
		}
		require.Equal(t, len(format), total, format)
	}
}

func TestTokenizeCaseInsensitive(t *testing.T) {
	for _, format := range []string{
		"yyyy-mm-dd hh24:mi:ss", "Y,yYy", "a.m.", "Mon", "fF3",
	} {
		lower, err := tokenizeFormat(format)
		require.NoError(t, err)
		upper, err := tokenizeFormat(strings.ToUpper(format))
		require.NoError(t, err)
		require.Equal(t, elementTypes(upper), elementTypes(lower), format)
	}
}

func TestTokenizeWhitespaceRun(t *testing.T) {
	elements, err := tokenizeFormat("YYYY   MM")
	require.NoError(t, err)
	require.Equal(t, []elementType{elemYYYY, elemWhitespace, elemMM}, elementTypes(elements))
	require.Equal(t, 3, elements[1].lenInSource)
}

func TestTokenizeQuotedLiteral(t *testing.T) {
	testCases := []struct {
		format  string
		literal string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"quote \" inside"`, `quote " inside`},
		{`"back \\ slash"`, `back \ slash`},
		{`"YYYY is not an element here"`, "YYYY is not an element here"},
	}
	for _, tc := range testCases {
		elements, err := tokenizeFormat(tc.format)
		require.NoError(t, err, tc.format)
		require.Len(t, elements, 1)
		require.Equal(t, elemDoubleQuotedLiteral, elements[0].typ)
		require.Equal(t, tc.literal, elements[0].literal)
		require.Equal(t, len(tc.format), elements[0].lenInSource)
	}
}

func TestTokenizeErrors(t *testing.T) {
	testCases := []struct {
		format string
		err    string
	}{
		{"@", "Cannot find matched format element at 0"},
		{"YYYY@", "Cannot find matched format element at 4"},
		{"FF", "Cannot find matched format element at 0"},
		{"FF0", "Cannot find matched format element at 0"},
		{`"hello`, `Cannot find matching " for quoted literal at 0`},
		{`"hello\nworld"`, `Unsupported escape sequence \n in text at 0`},
		{`YYYY "bad \t"`, `Unsupported escape sequence \t in text at 5`},
	}
	for _, tc := range testCases {
		_, err := tokenizeFormat(tc.format)
		require.Error(t, err, tc.format)
		require.Contains(t, err.Error(), tc.err, tc.format)
		require.True(t, IsValidationError(err), tc.format)
	}
}

func TestTokenizeFFN(t *testing.T) {
	for digits := 1; digits <= 9; digits++ {
		format := "FF" + string(rune('0'+digits))
		elements, err := tokenizeFormat(format)
		require.NoError(t, err, format)
		require.Len(t, elements, 1)
		require.Equal(t, elemFFN, elements[0].typ)
		require.Equal(t, digits, elements[0].subsecondDigits)
	}
}

func TestCasingInference(t *testing.T) {
	testCases := []struct {
		format string
		casing casingType
	}{
		{"MONTH", casingAllUpper},
		{"Month", casingFirstUpper},
		{"month", casingAllLower},
		{"mONTH", casingAllLower},
		{"MOnth", casingAllUpper},
		{"Y", casingAllUpper},
		{"y", casingAllLower},
		{"Am", casingAllUpper},   // meridian: first letter decides
		{"A.m.", casingAllUpper}, // dotted meridian
		{"a.M.", casingAllLower},
		{"Ad", casingAllUpper}, // era: first letter decides
		{"Y,yyy", casingAllUpper},
		{"y,YYY", casingAllLower},
		{"Dy", casingFirstUpper},
		{"dY", casingAllLower},
	}
	for _, tc := range testCases {
		elements, err := tokenizeFormat(tc.format)
		require.NoError(t, err, tc.format)
		require.Len(t, elements, 1, tc.format)
		require.Equal(t, tc.casing, elements[0].casing, tc.format)
	}
}

func TestElementDebugString(t *testing.T) {
	testCases := []struct {
		format string
		debug  string
	}{
		{"YYYY", "'YYYY'"},
		{"a.m.", "'A.M.'"},
		{"Y,YYY", "'Y,YYY'"},
		{"FF7", "'FF7'"},
		{"-", "'-'"},
		{"  ", "'  '"},
		{`"lit"`, `'"lit"'`},
	}
	for _, tc := range testCases {
		elements, err := tokenizeFormat(tc.format)
		require.NoError(t, err, tc.format)
		require.Len(t, elements, 1)
		require.Equal(t, tc.debug, elements[0].DebugString())
	}
}

func TestElementCategoryTotal(t *testing.T) {
	// Every element the tokenizer can produce has a category.
	for _, format := range []string{
		"-", `"x"`, " ", "YYYY", "YYY", "YY", "Y", "RRRR", "RR", "Y,YYY",
		"IYYY", "IYY", "IY", "I", "SYYYY", "YEAR", "SYEAR",
		"MM", "MON", "MONTH", "RM", "DDD", "DD", "D", "DAY", "DY", "J",
		"HH", "HH12", "HH24", "MI", "SS", "SSSSS", "FF1",
		"AM", "PM", "A.M.", "P.M.", "TZH", "TZM", "CC", "SCC", "Q",
		"IW", "WW", "W", "AD", "BC", "A.D.", "B.C.",
		"SP", "TH", "SPTH", "THSP", "FM",
	} {
		elements, err := tokenizeFormat(format)
		require.NoError(t, err, format)
		require.Len(t, elements, 1, format)
		require.NotEqual(t, catUnspecified, elements[0].category, format)
		require.Equal(t, elements[0].typ.category(), elements[0].category, format)
	}
}
