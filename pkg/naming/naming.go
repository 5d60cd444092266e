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

package naming

import "fmt"

const (
	// Namespace is the single namespace shared by every generated resource.
	Namespace = "default"

	// ClusterSuffix is the cluster-local DNS suffix used for service FQDNs.
	ClusterSuffix = "svc.cluster.local"

	// ServicePort is the port every generated Service listens on and every
	// generated URL and Ingress backend references.
	ServicePort = 8080
)

// ReleasePrefix returns the name prefix shared by all resources of a release.
func ReleasePrefix(release int) string {
	return fmt.Sprintf("r%03d", release)
}

// ConfigMapName returns the name of ConfigMap index within a release.
// Names are injective in (release, index): no collisions across releases.
func ConfigMapName(release, index int) string {
	return fmt.Sprintf("%s-config-%03d", ReleasePrefix(release), index)
}

// SecretName returns the name of Secret index within a release.
func SecretName(release, index int) string {
	return fmt.Sprintf("%s-secret-%03d", ReleasePrefix(release), index)
}

// AppName returns the shared name of the Deployment/Service pair at index
// within a release, also used as the "app" selector label value.
func AppName(release, index int) string {
	return fmt.Sprintf("%s-app-%03d", ReleasePrefix(release), index)
}

// ServiceFQDN returns the cluster-local DNS name of the Service at index
// within a release.
func ServiceFQDN(release, index int) string {
	return fmt.Sprintf("%s.%s.%s", AppName(release, index), Namespace, ClusterSuffix)
}

// ServiceURL returns the HTTP URL a Deployment env var carries for a service
// FQDN. These values are what the downstream hostname rewriter scans for.
func ServiceURL(fqdn string) string {
	return fmt.Sprintf("http://%s:%d/api", fqdn, ServicePort)
}

// IngressName returns the name of the single Ingress of a release.
func IngressName(release int) string {
	return fmt.Sprintf("%s-ingress", ReleasePrefix(release))
}

// IngressHost returns the external host routed by a release's Ingress.
func IngressHost(release int) string {
	return fmt.Sprintf("%s.example.com", ReleasePrefix(release))
}

// IngressPath returns the HTTP path prefix routed to the Service at index.
func IngressPath(index int) string {
	return fmt.Sprintf("/svc-%03d", index)
}

// VolumeName returns the positional volume/volumeMount name for an entry of
// the global ConfigMap name list. The index is the entry's position in the
// list returned by AllConfigMapNames, so the identifier is unambiguous across
// every Deployment in every release.
func VolumeName(idx int) string {
	return fmt.Sprintf("cm-%04d", idx)
}

// MountPath returns the container path a positional ConfigMap volume is
// mounted at.
func MountPath(idx int) string {
	return fmt.Sprintf("/etc/config/%04d", idx)
}

// EnvVarName returns the positional env var name for an entry of the global
// service FQDN list returned by AllServiceFQDNs.
func EnvVarName(idx int) string {
	return fmt.Sprintf("SVC_%04d", idx)
}

// AllConfigMapNames returns the names of all n² ConfigMaps across all n
// releases, ordered release-major then index-minor. Every Deployment mounts
// this list in this exact order, so positions are load-bearing: the volume
// named VolumeName(idx) is always bound to the name at position idx.
func AllConfigMapNames(n int) []string {
	names := make([]string, 0, n*n)
	for r := 0; r < n; r++ {
		for i := 0; i < n; i++ {
			names = append(names, ConfigMapName(r, i))
		}
	}
	return names
}

// AllServiceFQDNs returns the FQDNs of all n² Services across all n releases,
// in the same release-major order as AllConfigMapNames. Every Deployment
// declares one env var per entry, named by position via EnvVarName.
func AllServiceFQDNs(n int) []string {
	fqdns := make([]string, 0, n*n)
	for r := 0; r < n; r++ {
		for i := 0; i < n; i++ {
			fqdns = append(fqdns, ServiceFQDN(r, i))
		}
	}
	return fqdns
}
