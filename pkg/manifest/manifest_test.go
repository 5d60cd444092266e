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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"
)

func TestConfigMapContent(t *testing.T) {
	t.Parallel()

	cm := ConfigMap(1, 2)

	assert.Equal(t, "r001-config-002", cm.Name)
	assert.Equal(t, "default", cm.Namespace)
	assert.Equal(t, "value-a-1-2", cm.Data["SETTING_A"])
	assert.Equal(t, "value-b-1-2", cm.Data["SETTING_B"])
	assert.Equal(t, "key: release-1-cm-2\n", cm.Data["config.yaml"])
}

func TestSecretContent(t *testing.T) {
	t.Parallel()

	s := Secret(0, 1)

	assert.Equal(t, "r000-secret-001", s.Name)
	assert.Equal(t, corev1.SecretTypeOpaque, s.Type)
	assert.Equal(t, []byte("password"), s.Data["password"])
	assert.Equal(t, []byte("token123"), s.Data["token"])

	// Secret payloads are fixed placeholders, identical for every (r, i).
	assert.Equal(t, s.Data, Secret(4, 3).Data)

	// The typed Data field must serialize to the expected base64 encoding.
	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), "password: cGFzc3dvcmQ=")
	assert.Contains(t, string(out), "token: dG9rZW4xMjM=")
}

func TestServiceShape(t *testing.T) {
	t.Parallel()

	svc := Service(2, 0)

	assert.Equal(t, "r002-app-000", svc.Name)
	assert.Equal(t, corev1.ServiceTypeClusterIP, svc.Spec.Type)
	require.Len(t, svc.Spec.Ports, 1)
	assert.Equal(t, int32(8080), svc.Spec.Ports[0].Port)
	assert.Equal(t, int32(8080), svc.Spec.Ports[0].TargetPort.IntVal)
	assert.Equal(t, map[string]string{"app": "r002-app-000"}, svc.Spec.Selector)
}

func TestIngressAggregatesReleaseServices(t *testing.T) {
	t.Parallel()

	c := NewCorpus(3)
	ing := Ingress(c, 1)

	assert.Equal(t, "r001-ingress", ing.Name)
	assert.Equal(t, "haproxy", ing.Annotations["kubernetes.io/ingress.class"])
	require.Len(t, ing.Spec.Rules, 1)
	assert.Equal(t, "r001.example.com", ing.Spec.Rules[0].Host)

	paths := ing.Spec.Rules[0].HTTP.Paths
	require.Len(t, paths, 3)
	for i, p := range paths {
		assert.Equal(t, fmt.Sprintf("/svc-%03d", i), p.Path)
		assert.Equal(t, fmt.Sprintf("r001-app-%03d", i), p.Backend.Service.Name)
		assert.Equal(t, int32(8080), p.Backend.Service.Port.Number)
	}
}

func TestCorpusSequences(t *testing.T) {
	t.Parallel()

	c := NewCorpus(4)
	assert.Equal(t, 4, c.Scale)
	assert.Len(t, c.ConfigMapNames, 16)
	assert.Len(t, c.ServiceFQDNs, 16)
}
