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

import "github.com/cockroachdb/errors"

// Errors produced by this package belong to one of two channels that SQL
// layers report differently: validation errors (a malformed or
// contradictory format string, bad UTF-8, an unresolvable zone name) and
// evaluation errors (an input string that does not match the format, or a
// result outside the supported range). Callers classify with
// IsValidationError and IsEvaluationError.
var (
	errValidation = errors.New("format validation error")
	errEvaluation = errors.New("format evaluation error")
)

func validationErrf(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), errValidation)
}

func evalErrf(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), errEvaluation)
}

// IsValidationError reports whether err came from format-string analysis:
// tokenization, structural validation, UTF-8 checks, or zone resolution.
func IsValidationError(err error) bool {
	return errors.Is(err, errValidation)
}

// IsEvaluationError reports whether err came from evaluating a cast: an
// input string that failed to parse under the format, or a result outside
// the supported time range.
func IsEvaluationError(err error) bool {
	return errors.Is(err, errEvaluation)
}
