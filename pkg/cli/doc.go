// Copyright (c) 2025, the h2c authors.  All rights reserved.
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

// Package cli implements the command-line interface for torturegen.
//
// # Commands
//
// generate - Generate a torture-test manifest corpus:
//
//	torturegen generate <n> [--output DIR] [--plan-format yaml|json|table] [--plan-only]
//
// The positional argument n is the scale factor (must be >= 1). The corpus
// is written as <output>/release-NNN/manifests.yaml per release plus a
// checksums.txt at the output root. The cost plan (resource counts and the
// n⁴ reference totals the downstream consumer will face) is printed to
// stdout before generation.
//
// version - Print version and build information:
//
//	torturegen version
//
// # Global Flags
//
//	--debug       Enable debug logging
//	--log-json    Output logs in JSON format
//	--version     Show version information
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments or execution failure
//
// The CLI uses the urfave/cli/v3 framework and delegates to pkg/generator
// for orchestration, pkg/manifest for document assembly, and
// pkg/serializers for plan output.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/h2c-tools/torturegen/pkg/cli.version=1.0.0'"
package cli
