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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func TestReleaseEmissionOrder(t *testing.T) {
	t.Parallel()

	c := NewCorpus(3)
	objects := Release(c, 1)
	require.Len(t, objects, 4*3+1)

	kinds := make([]string, 0, len(objects))
	for _, obj := range objects {
		kinds = append(kinds, obj.GetObjectKind().GroupVersionKind().Kind)
	}

	want := []string{
		"ConfigMap", "ConfigMap", "ConfigMap",
		"Secret", "Secret", "Secret",
		"Deployment", "Deployment", "Deployment",
		"Service", "Service", "Service",
		"Ingress",
	}
	assert.Equal(t, want, kinds)
}

func TestEncodeReleaseDocumentCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		scale int
	}{
		{"scale one", 1},
		{"scale two", 2},
		{"scale four", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCorpus(tt.scale)
			blob, err := EncodeRelease(c, 0)
			require.NoError(t, err)

			docs := strings.Split(string(blob), DocumentSeparator)
			assert.Len(t, docs, 4*tt.scale+1)
		})
	}
}

func TestEncodeReleaseDeterministic(t *testing.T) {
	t.Parallel()

	first, err := EncodeRelease(NewCorpus(3), 2)
	require.NoError(t, err)
	second, err := EncodeRelease(NewCorpus(3), 2)
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-encoding the same release must be byte-identical")
}

func TestEncodeReleaseDocumentShape(t *testing.T) {
	t.Parallel()

	blob, err := EncodeRelease(NewCorpus(2), 0)
	require.NoError(t, err)

	// Every document must round-trip as a manifest with apiVersion, kind,
	// metadata.name and metadata.namespace set.
	for _, doc := range strings.Split(string(blob), DocumentSeparator) {
		var m struct {
			APIVersion string `json:"apiVersion"`
			Kind       string `json:"kind"`
			Metadata   struct {
				Name      string `json:"name"`
				Namespace string `json:"namespace"`
			} `json:"metadata"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(doc), &m))
		assert.NotEmpty(t, m.APIVersion)
		assert.NotEmpty(t, m.Kind)
		assert.NotEmpty(t, m.Metadata.Name)
		assert.Equal(t, "default", m.Metadata.Namespace)
	}
}
