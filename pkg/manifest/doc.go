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

// Package manifest assembles one release's worth of interlinked Kubernetes
// documents from the global name sequences.
//
// Objects are built as typed k8s.io/api structs and serialized with
// sigs.k8s.io/yaml, so the emitted field names and structural shape are
// exactly what a standard manifest-consuming tool expects. All builders are
// pure: given the same Corpus and indices they produce identical documents,
// which makes the whole corpus reproducible byte for byte.
//
// The Deployment builder is where the quadratic-per-resource cross-reference
// load lives; see Deployment for the breakdown of the n² mounts and n² env
// vars per pod template.
package manifest
