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

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError(t *testing.T) {
	t.Parallel()

	t.Run("without cause", func(t *testing.T) {
		t.Parallel()
		err := New(ErrCodeInvalidInput, "scale must be >= 1")
		assert.Equal(t, "[INVALID_INPUT] scale must be >= 1", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()
		cause := fmt.Errorf("disk full")
		err := Wrap(ErrCodeIO, "failed to write manifests", cause)
		assert.Equal(t, "[IO] failed to write manifests: disk full", err.Error())
		assert.True(t, stderrors.Is(err, cause))
	})

	t.Run("with context", func(t *testing.T) {
		t.Parallel()
		err := NewWithContext(ErrCodeInvalidInput, "scale must be >= 1", map[string]any{"scale": 0})
		assert.Equal(t, 0, err.Context["scale"])
	})

	t.Run("errors.As", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("outer: %w", New(ErrCodeEncoding, "bad document"))
		var se *StructuredError
		assert.True(t, stderrors.As(wrapped, &se))
		assert.Equal(t, ErrCodeEncoding, se.Code)
	})
}
