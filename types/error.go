/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"fmt"
	"strings"
)

// InvalidParameterError reports a non-positive mining threshold. It is
// returned before any mining work starts.
type InvalidParameterError struct {
	Name  string
	Value interface{}
}

// Error implements the error interface.
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("[INVALID_PARAMETER] %s must be >= 1, got %v", e.Name, e.Value)
}

// InvalidInputError reports a malformed transaction database: an item that
// cannot key a map, a timestamp that cannot be coerced, or a value of an
// unexpected shape. Mining never starts after this error.
type InvalidInputError struct {
	Reason    string
	Timestamp interface{}
	Item      interface{}
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	var builder strings.Builder
	builder.WriteString("[INVALID_INPUT] ")
	builder.WriteString(e.Reason)
	if e.Timestamp != nil {
		builder.WriteString(fmt.Sprintf(" (timestamp %v)", e.Timestamp))
	}
	if e.Item != nil {
		builder.WriteString(fmt.Sprintf(" (item %#v)", e.Item))
	}
	return builder.String()
}
