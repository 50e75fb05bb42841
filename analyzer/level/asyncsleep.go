// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package level

import (
	"fmt"
	"strings"
)

// AsyncSleep specifies how blocking sleep calls in asynchronous functions are checked.
type AsyncSleep uint8

const (
	// AsyncSleepNearest checks sleep calls whose nearest enclosing function is asynchronous.
	AsyncSleepNearest AsyncSleep = iota

	// AsyncSleepTransitive also checks sleep calls in synchronous function literals
	// nested in asynchronous functions.
	AsyncSleepTransitive

	// AsyncSleepOff disables the check.
	AsyncSleepOff
)

// MarshalText implements [encoding.TextMarshaler].
func (o AsyncSleep) MarshalText() ([]byte, error) {
	switch o {
	case AsyncSleepNearest:
		return []byte("nearest"), nil

	case AsyncSleepTransitive:
		return []byte("transitive"), nil

	case AsyncSleepOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown async-sleep level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *AsyncSleep) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "true", "on", "nearest":
		*o = AsyncSleepNearest

	case "transitive":
		*o = AsyncSleepTransitive

	case "off", "false":
		*o = AsyncSleepOff

	default:
		return fmt.Errorf("unknown async-sleep level %q", string(text))
	}

	return nil
}

// Enabled reports whether the check is enabled at all.
func (o AsyncSleep) Enabled() bool {
	return o != AsyncSleepOff
}

// Transitive reports whether synchronous function literals are looked through.
func (o AsyncSleep) Transitive() bool {
	return o == AsyncSleepTransitive
}
