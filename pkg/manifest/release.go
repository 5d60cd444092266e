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
	"bytes"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"

	"github.com/h2c-tools/torturegen/pkg/errors"
)

// DocumentSeparator is the line emitted between documents in a multi-doc
// manifest file.
const DocumentSeparator = "---\n"

// Release assembles all objects of one release in the fixed emission order:
// n ConfigMaps, n Secrets, n Deployments, n Services, 1 Ingress. The order is
// part of the output contract and must not change between runs.
func Release(c *Corpus, release int) []runtime.Object {
	objects := make([]runtime.Object, 0, 4*c.Scale+1)

	for i := 0; i < c.Scale; i++ {
		objects = append(objects, ConfigMap(release, i))
	}
	for i := 0; i < c.Scale; i++ {
		objects = append(objects, Secret(release, i))
	}
	for i := 0; i < c.Scale; i++ {
		objects = append(objects, Deployment(c, release, i))
	}
	for i := 0; i < c.Scale; i++ {
		objects = append(objects, Service(release, i))
	}
	objects = append(objects, Ingress(c, release))

	return objects
}

// EncodeRelease renders one release as a single multi-document YAML blob,
// documents joined by the three-dash separator. Marshaling typed objects
// through sigs.k8s.io/yaml sorts map keys, so the output is byte-identical
// across runs for the same scale.
func EncodeRelease(c *Corpus, release int) ([]byte, error) {
	var buf bytes.Buffer

	for i, obj := range Release(c, release) {
		if i > 0 {
			buf.WriteString(DocumentSeparator)
		}

		doc, err := yaml.Marshal(obj)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeEncoding, "failed to marshal manifest document", err)
		}
		buf.Write(doc)
	}

	return buf.Bytes(), nil
}
