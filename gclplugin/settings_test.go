// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	asyncguard "fillmore-labs.com/asyncguard/analyzer"
	. "fillmore-labs.com/asyncguard/gclplugin"
)

const allSettings = `{
	"sleep": true,
	"async-sleep": "transitive",
	"propagate-context": false,
	"generated": true
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
		{"level", `{"async-sleep": "off"}`, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), asyncguard.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestSettingsInvalidLevel(t *testing.T) {
	t.Parallel()

	var s Settings
	if err := json.Unmarshal([]byte(`{"async-sleep": "always"}`), &s); err == nil {
		t.Error("Expected error for unknown async-sleep level")
	}
}

func TestPlugin(t *testing.T) {
	t.Parallel()

	p, err := New(map[string]any{"sleep": true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	analyzers, err := p.BuildAnalyzers()
	if err != nil {
		t.Fatalf("BuildAnalyzers failed: %v", err)
	}

	if len(analyzers) != 1 || analyzers[0].Name != "asyncguard" {
		t.Errorf("Got analyzers %v, want asyncguard", analyzers)
	}
}
