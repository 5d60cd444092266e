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

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/h2c-tools/torturegen/pkg/naming"
)

// ConfigMap builds the ConfigMap at index within a release. The two scalar
// settings and the embedded config.yaml block are derived from (release,
// index) so every document in the corpus is distinguishable yet reproducible.
func ConfigMap(release, index int) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "ConfigMap",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.ConfigMapName(release, index),
			Namespace: naming.Namespace,
		},
		Data: map[string]string{
			"SETTING_A":   fmt.Sprintf("value-a-%d-%d", release, index),
			"SETTING_B":   fmt.Sprintf("value-b-%d-%d", release, index),
			"config.yaml": fmt.Sprintf("key: release-%d-cm-%d\n", release, index),
		},
	}
}
