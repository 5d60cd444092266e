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

package generator

import (
	"fmt"
	"strings"
)

// Plan is the operator-facing cost report computed before any file is
// written. The n⁴ fields describe the work the downstream consumer will face,
// not work this tool performs; they are int64 because they overflow 32 bits
// well inside practical scales.
type Plan struct {
	Scale            int    `json:"scale" yaml:"scale"`
	Releases         int    `json:"releases" yaml:"releases"`
	Deployments      int    `json:"deployments" yaml:"deployments"`
	ConfigMaps       int    `json:"configmaps" yaml:"configmaps"`
	Secrets          int    `json:"secrets" yaml:"secrets"`
	Services         int    `json:"services" yaml:"services"`
	Ingresses        int    `json:"ingresses" yaml:"ingresses"`
	MountResolutions int64  `json:"mount_resolutions" yaml:"mount_resolutions"`
	EnvRewrites      int64  `json:"env_rewrites" yaml:"env_rewrites"`
	OutputDir        string `json:"output_dir" yaml:"output_dir"`
}

// Plan computes the cost report for the configured scale.
func (g *Generator) Plan() *Plan {
	n := g.cfg.Scale
	perRelease := n * n
	quartic := int64(perRelease) * int64(perRelease)

	return &Plan{
		Scale:            n,
		Releases:         n,
		Deployments:      perRelease,
		ConfigMaps:       perRelease,
		Secrets:          perRelease,
		Services:         perRelease,
		Ingresses:        n,
		MountResolutions: quartic,
		EnvRewrites:      quartic,
		OutputDir:        g.cfg.OutputDir,
	}
}

// Summary returns a human-readable multi-line description of the plan.
func (p *Plan) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generating torture test: n=%d\n", p.Scale)
	fmt.Fprintf(&b, "  %d deployments, %d configmaps, %d services\n",
		p.Deployments, p.ConfigMaps, p.Services)
	fmt.Fprintf(&b, "  %d configmap mount resolutions (n^4)\n", p.MountResolutions)
	fmt.Fprintf(&b, "  %d env FQDN rewrites (n^4)\n", p.EnvRewrites)
	fmt.Fprintf(&b, "  Output: %s", p.OutputDir)
	return b.String()
}
