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

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/h2c-tools/torturegen/pkg/naming"
)

// Deployment builds the Deployment at index within a release. This is the
// cross-reference point of the corpus:
//
//   - one env var per entry of the global FQDN list (n² per Deployment),
//     forcing the downstream hostname rewriter to scan n² values against n²
//     known services;
//   - one volume + volumeMount per entry of the global ConfigMap list (n²
//     per Deployment), bound positionally so mount resolution totals n⁴
//     across the corpus;
//   - envFrom secret refs for the deployment's own release only (n, never
//     n²), keeping the Secret axis linear so the stress is isolated to
//     mounts and env FQDNs.
//
// The init container and sidecar add realistic pod-spec shape without adding
// reference load.
func Deployment(c *Corpus, release, index int) *appsv1.Deployment {
	app := naming.AppName(release, index)
	labels := map[string]string{"app": app}

	env := make([]corev1.EnvVar, 0, len(c.ServiceFQDNs))
	for idx, fqdn := range c.ServiceFQDNs {
		env = append(env, corev1.EnvVar{
			Name:  naming.EnvVarName(idx),
			Value: naming.ServiceURL(fqdn),
		})
	}

	envFrom := make([]corev1.EnvFromSource, 0, c.Scale)
	for j := 0; j < c.Scale; j++ {
		envFrom = append(envFrom, corev1.EnvFromSource{
			SecretRef: &corev1.SecretEnvSource{
				LocalObjectReference: corev1.LocalObjectReference{
					Name: naming.SecretName(release, j),
				},
			},
		})
	}

	mounts := make([]corev1.VolumeMount, 0, len(c.ConfigMapNames))
	volumes := make([]corev1.Volume, 0, len(c.ConfigMapNames))
	for idx, name := range c.ConfigMapNames {
		mounts = append(mounts, corev1.VolumeMount{
			Name:      naming.VolumeName(idx),
			MountPath: naming.MountPath(idx),
			ReadOnly:  true,
		})
		volumes = append(volumes, corev1.Volume{
			Name: naming.VolumeName(idx),
			VolumeSource: corev1.VolumeSource{
				ConfigMap: &corev1.ConfigMapVolumeSource{
					LocalObjectReference: corev1.LocalObjectReference{
						Name: name,
					},
				},
			},
		})
	}

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      app,
			Namespace: naming.Namespace,
			Labels:    labels,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(int32(1)),
			Selector: &metav1.LabelSelector{
				MatchLabels: labels,
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: labels,
				},
				Spec: corev1.PodSpec{
					InitContainers: []corev1.Container{
						{
							Name:    "init",
							Image:   "busybox:1.36",
							Command: []string{"sh", "-c", fmt.Sprintf("echo init-%s-%d", naming.ReleasePrefix(release), index)},
						},
					},
					Containers: []corev1.Container{
						{
							Name:  "main",
							Image: "nginx:1.27-alpine",
							Ports: []corev1.ContainerPort{
								{ContainerPort: naming.ServicePort},
							},
							Env:          env,
							EnvFrom:      envFrom,
							VolumeMounts: mounts,
						},
						{
							Name:    "sidecar",
							Image:   "busybox:1.36",
							Command: []string{"sh", "-c", "sleep infinity"},
						},
					},
					Volumes: volumes,
				},
			},
		},
	}
}
