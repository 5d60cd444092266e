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

package manifest

import "github.com/h2c-tools/torturegen/pkg/naming"

// Corpus holds the scale factor and the two global name sequences shared by
// every release. The sequences are computed once and read-only from then on:
// every Deployment in every release iterates them in the same order, which is
// what keeps positional identifiers (cm-NNNN, SVC_NNNN) unambiguous across
// the whole corpus.
type Corpus struct {
	// Scale is the n parameter: n releases, n of each resource per release.
	Scale int

	// ConfigMapNames is the global ordered list of all n² ConfigMap names.
	ConfigMapNames []string

	// ServiceFQDNs is the global ordered list of all n² service FQDNs.
	ServiceFQDNs []string
}

// NewCorpus derives the global name sequences for scale n. The caller is
// responsible for validating n >= 1.
func NewCorpus(n int) *Corpus {
	return &Corpus{
		Scale:          n,
		ConfigMapNames: naming.AllConfigMapNames(n),
		ServiceFQDNs:   naming.AllServiceFQDNs(n),
	}
}
