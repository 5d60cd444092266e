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
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/h2c-tools/torturegen/pkg/naming"
)

// Ingress builds the single Ingress of a release: one Prefix path per
// same-release Service, all on the fixed service port.
func Ingress(c *Corpus, release int) *networkingv1.Ingress {
	pathType := networkingv1.PathTypePrefix

	paths := make([]networkingv1.HTTPIngressPath, 0, c.Scale)
	for i := 0; i < c.Scale; i++ {
		paths = append(paths, networkingv1.HTTPIngressPath{
			Path:     naming.IngressPath(i),
			PathType: &pathType,
			Backend: networkingv1.IngressBackend{
				Service: &networkingv1.IngressServiceBackend{
					Name: naming.AppName(release, i),
					Port: networkingv1.ServiceBackendPort{
						Number: naming.ServicePort,
					},
				},
			},
		})
	}

	return &networkingv1.Ingress{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "networking.k8s.io/v1",
			Kind:       "Ingress",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.IngressName(release),
			Namespace: naming.Namespace,
			Annotations: map[string]string{
				"kubernetes.io/ingress.class": "haproxy",
			},
		},
		Spec: networkingv1.IngressSpec{
			Rules: []networkingv1.IngressRule{
				{
					Host: naming.IngressHost(release),
					IngressRuleValue: networkingv1.IngressRuleValue{
						HTTP: &networkingv1.HTTPIngressRuleValue{
							Paths: paths,
						},
					},
				},
			},
		},
	}
}
