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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateForParsing(t *testing.T) {
	testCases := []struct {
		format string
		err    string
	}{
		{"YYYY-MM-DD HH24:MI:SS", ""},
		{"YYYY-MM-DD HH12:MI:SS P.M.", ""},
		{"DDD YYYY", ""},
		{"SSSSS", ""},
		{`YYYY"text"MM`, ""},
		{"Y,YYY", ""},
		{"TZH:TZM HH24:MI", ""},

		{"HH12:MI",
			"Format element in category MERIDIAN_INDICATOR is required when format element 'HH12' exists"},
		{"HH:MI",
			"Format element in category MERIDIAN_INDICATOR is required when format element 'HH' exists"},
		{"AM",
			"Format element of type HH/HH12 is required when format element in category MERIDIAN_INDICATOR ('AM') exists"},
		{"HH24 AM",
			"Format element in category MERIDIAN_INDICATOR ('AM') and format element 'HH24' cannot exist simultaneously"},
		{"MiYYmI",
			"Format element 'MI' appears more than once in the format string"},
		{"YY RRRR",
			"More than one format element in category YEAR exist: 'YY' and 'RRRR'"},
		{"MM MON",
			"More than one format element in category MONTH exist: 'MM' and 'MON'"},
		{"DDD MM",
			"Format element in category MONTH ('MM') and format element 'DDD' cannot exist simultaneously"},
		{"DDD DD",
			"More than one format element in category DAY exist: 'DDD' and 'DD'"},
		{"SSSSS HH24:MI",
			"Format element in category HOUR ('HH24') and format element 'SSSSS' cannot exist simultaneously"},
		{"SSSSS MI",
			"Format element in category MINUTE ('MI') and format element 'SSSSS' cannot exist simultaneously"},
		{"SSSSS SS",
			"Format elements 'SSSSS' and 'SS' cannot exist simultaneously"},
		{"DAY", "Format element 'DAY' is not supported for parsing"},
		{"IYYY", "Format element 'IYYY' is not supported for parsing"},
		{"J", "Format element 'J' is not supported for parsing"},
		{"Q", "Format element 'Q' is not supported for parsing"},
		{"D", "Format element 'D' is not supported for parsing"},
	}
	for _, tc := range testCases {
		err := ValidateFormatStringForParsing(tc.format, OutputTimestamp)
		if tc.err == "" {
			require.NoError(t, err, tc.format)
		} else {
			require.Error(t, err, tc.format)
			require.Contains(t, err.Error(), tc.err, tc.format)
			require.True(t, IsValidationError(err), tc.format)
		}
	}
}

func TestValidateForParsingOutputTypes(t *testing.T) {
	// Only TIMESTAMP is parseable today.
	for _, outputType := range []OutputType{OutputDate, OutputTime, OutputDatetime} {
		err := ValidateFormatStringForParsing("YYYY", outputType)
		require.Error(t, err)
		require.Contains(t, err.Error(), "Unsupported output type for validation")
	}
	require.NoError(t, ValidateFormatStringForParsing("YYYY", OutputTimestamp))
}

func TestValidateForFormatting(t *testing.T) {
	testCases := []struct {
		format     string
		outputType OutputType
		err        string
	}{
		{"YYYY-MM-DD", OutputDate, ""},
		{"Day, Month DD, YEAR", OutputDate, ""},
		{"HH24:MI:SS.FF6", OutputTime, ""},
		{"HH12:MI A.M.", OutputTime, ""},
		{"YYYY-MM-DD HH24:MI:SS", OutputDatetime, ""},
		{"YYYY-MM-DD HH24:MI:SS.FF9 TZH:TZM", OutputTimestamp, ""},
		// Formatting to TIMESTAMP validates nothing beyond tokenization.
		{"Q WW SP", OutputTimestamp, ""},

		{"HH24", OutputDate, "DATE does not support 'HH24'"},
		{"SS", OutputDate, "DATE does not support 'SS'"},
		{"TZH", OutputDate, "DATE does not support 'TZH'"},
		{"YYYY", OutputTime, "TIME does not support 'YYYY'"},
		{"DD", OutputTime, "TIME does not support 'DD'"},
		{"TZH", OutputDatetime, "DATETIME does not support 'TZH'"},
		{"Q", OutputDate, "DATE does not support 'Q'"},
	}
	for _, tc := range testCases {
		err := ValidateFormatStringForFormatting(tc.format, tc.outputType)
		if tc.err == "" {
			require.NoError(t, err, tc.format)
		} else {
			require.Error(t, err, tc.format)
			require.Contains(t, err.Error(), tc.err, tc.format)
			require.True(t, IsValidationError(err), tc.format)
		}
	}
}

func TestValidateIdempotent(t *testing.T) {
	// Validating the same format twice yields the same outcome.
	for _, format := range []string{"YYYY-MM-DD", "HH12:MI", "SSSSS SS"} {
		err1 := ValidateFormatStringForParsing(format, OutputTimestamp)
		err2 := ValidateFormatStringForParsing(format, OutputTimestamp)
		if err1 == nil {
			require.NoError(t, err2, format)
		} else {
			require.Error(t, err2, format)
			require.Equal(t, err1.Error(), err2.Error(), format)
		}
	}
}

func TestValidateBadUTF8(t *testing.T) {
	err := ValidateFormatStringForParsing("YYYY\xff", OutputTimestamp)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Input string is not valid UTF-8")
	require.True(t, IsValidationError(err))

	err = ValidateFormatStringForFormatting("YYYY\xff", OutputTimestamp)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Format string is not a valid UTF-8 string.")
}
