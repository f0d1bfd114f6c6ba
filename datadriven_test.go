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
	"time"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

// TestDataDriven exercises formatting and parsing against the testdata
// corpora.
//
// format commands take tz=<zone>; the input is a reference timestamp in
// RFC 3339 followed by one format string per line, and the output is each
// format with its rendering.
//
// parse commands take tz=<zone> now=<RFC 3339>; the input is a format
// string followed by one timestamp string per line, and the output is each
// input with the parsed instant in UTC.
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			var ret strings.Builder
			switch d.Cmd {
			case "format":
				var tz string
				d.ScanArgs(t, "tz", &tz)
				loc, err := time.LoadLocation(tz)
				require.NoError(t, err)
				lines := strings.Split(d.Input, "\n")
				ts, err := time.Parse(time.RFC3339Nano, lines[0])
				require.NoError(t, err)
				for i, format := range lines[1:] {
					if i > 0 {
						ret.WriteString("\n")
					}
					out, err := CastFormatTimestampToString(format, ts, loc)
					if err != nil {
						ret.WriteString(format + ": error: " + err.Error())
					} else {
						ret.WriteString(format + ": " + out)
					}
				}
			case "parse":
				var tz, nowStr string
				d.ScanArgs(t, "tz", &tz)
				d.ScanArgs(t, "now", &nowStr)
				loc, err := time.LoadLocation(tz)
				require.NoError(t, err)
				now, err := time.Parse(time.RFC3339, nowStr)
				require.NoError(t, err)
				lines := strings.Split(d.Input, "\n")
				format := lines[0]
				for i, input := range lines[1:] {
					if i > 0 {
						ret.WriteString("\n")
					}
					res, err := CastStringToTimestamp(format, input, loc, now)
					if err != nil {
						ret.WriteString(input + ": error: " + err.Error())
					} else {
						ret.WriteString(input + ": " + res.UTC().Format(time.RFC3339Nano))
					}
				}
			default:
				t.Fatalf("unknown command %q", d.Cmd)
			}
			return ret.String()
		})
	})
}
