// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package label

import (
	"fmt"
	"strings"
)

// ValidationError reports missing or malformed request fields.
type ValidationError struct {
	Missing []string
	Invalid map[string]string // field -> reason
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(e.Missing, ", "))
	}
	for _, field := range e.InvalidFields() {
		parts = append(parts, fmt.Sprintf("Invalid field %s: %s", field, e.Invalid[field]))
	}
	return strings.Join(parts, "; ")
}

// InvalidFields returns the names of malformed fields in request order.
func (e *ValidationError) InvalidFields() []string {
	var fields []string
	for _, f := range requestFields {
		if _, ok := e.Invalid[f]; ok {
			fields = append(fields, f)
		}
	}
	return fields
}

func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}

func (e *ValidationError) invalid(field, reason string) {
	if e.Invalid == nil {
		e.Invalid = make(map[string]string)
	}
	e.Invalid[field] = reason
}

// RenderingError wraps a failure while producing the label image.
type RenderingError struct {
	Stage string
	Err   error
}

func (e *RenderingError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Stage, e.Err)
}

func (e *RenderingError) Unwrap() error {
	return e.Err
}
