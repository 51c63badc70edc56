// Copyright 2024 The Corechain Authors
// This file is part of Corechain.
//
// Corechain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Corechain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Corechain. If not, see <http://www.gnu.org/licenses/>.

// Package headervalidator checks a post-merge header against its parent:
// number, gas usage, gas limit adjustment, base fee, excess blob gas,
// timestamp, extra data, and the post-merge PoW fields.
package headervalidator

import "fmt"

// ValidationError reports a single failing field with its expected and
// actual values, for telemetry.
type ValidationError struct {
	Field    string
	Message  string
	Expected string
	Actual   string
}

func (e *ValidationError) Error() string {
	if e.Expected == "" && e.Actual == "" {
		return fmt.Sprintf("header validation: field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("header validation: field %s: %s (expected %s, actual %s)", e.Field, e.Message, e.Expected, e.Actual)
}

func fieldErr(field, message, expected, actual string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Expected: expected, Actual: actual}
}
