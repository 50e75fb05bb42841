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

// Package analyzer implements the asyncguard static analysis pass.
//
// # Overview
//
// AsyncGuard detects code that blocks or drops cancellation where it should not:
//
//   - sleep: any call to [time.Sleep] (disabled by default).
//   - async-sleep: [time.Sleep] inside an asynchronous function, that is a function
//     literal started as a goroutine or a function accepting a [context.Context].
//   - propagate-context: [context.Background], [context.TODO] or nil passed as a
//     context argument while a context variable is in scope.
//
// # Example
//
// Before:
//
//	func poll(ctx context.Context, c *Client) {
//	    time.Sleep(100 * time.Millisecond)
//	    c.Fetch(context.Background())
//	}
//
// After applying asyncguard's suggested fixes:
//
//	func poll(ctx context.Context, c *Client) {
//	    <-time.After(100 * time.Millisecond)
//	    c.Fetch(ctx)
//	}
//
// # Suppression
//
// Diagnostics are suppressed by a //nolint:asyncguard comment on the same line,
// in the doc comment of the enclosing function declaration or in the package comment.
package analyzer
