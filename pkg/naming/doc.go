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

// Package naming derives every identifier in the generated corpus.
//
// All names are pure, deterministic functions of the release index and the
// per-release resource index. The two global sequences (AllConfigMapNames,
// AllServiceFQDNs) are computed once per run and passed explicitly to the
// manifest builders; positional identifiers (cm-NNNN volumes, SVC_NNNN env
// vars) refer to positions in those sequences, which is what makes the
// cross-release reference graph reproducible byte for byte.
package naming
