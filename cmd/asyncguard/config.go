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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/asyncguard/gclplugin"
)

// defaultConfig is the configuration file read when present.
const defaultConfig = ".asyncguard.yaml"

// loadSettings reads analyzer settings from a YAML file. A missing file is an error only when required.
func loadSettings(path string, required bool) (gclplugin.Settings, error) {
	var settings gclplugin.Settings

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return settings, nil
	}

	if err != nil {
		return settings, err
	}

	return parseSettings(path, data)
}

func parseSettings(path string, data []byte) (gclplugin.Settings, error) {
	var settings gclplugin.Settings

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return settings, fmt.Errorf("%s: %w", path, err)
	}

	return settings, nil
}
