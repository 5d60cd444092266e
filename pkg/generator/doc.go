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

// Package generator orchestrates corpus generation: it validates the scale
// factor, computes the global name sequences once, writes one
// release-NNN/manifests.yaml per release plus a checksums.txt, and reports
// the cost (Plan) and outcome (Result) to the operator.
//
// Output layout:
//
//	<output>/release-000/manifests.yaml
//	<output>/release-001/manifests.yaml
//	...
//	<output>/checksums.txt
package generator
