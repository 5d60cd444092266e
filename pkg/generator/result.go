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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/h2c-tools/torturegen/pkg/errors"
)

// ChecksumFileName is the digest manifest written at the corpus root. Because
// generation is deterministic, this file doubles as a reproducibility
// witness: two runs with the same scale produce the same checksums.
const ChecksumFileName = "checksums.txt"

// Result tracks what a run produced.
type Result struct {
	// Files lists every written manifest file in generation order.
	Files []string `json:"files" yaml:"files"`

	// TotalFiles is the count of written files.
	TotalFiles int `json:"total_files" yaml:"total_files"`

	// TotalSize is the total size in bytes of all written files.
	TotalSize int64 `json:"total_size_bytes" yaml:"total_size_bytes"`

	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// OutputDir is the corpus root directory.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// checksums maps output-relative paths to SHA-256 digests, collected
	// from the in-memory content as files are written.
	checksums map[string]string
}

// addFile records a written file and its content digest.
func (r *Result) addFile(path string, content []byte) {
	r.Files = append(r.Files, path)
	r.TotalSize += int64(len(content))

	rel, err := filepath.Rel(r.OutputDir, path)
	if err != nil {
		rel = path
	}
	sum := sha256.Sum256(content)
	r.checksums[rel] = hex.EncodeToString(sum[:])
}

// writeChecksums writes the sorted digest list to checksums.txt at the
// corpus root.
func (r *Result) writeChecksums() error {
	paths := make([]string, 0, len(r.checksums))
	for p := range r.checksums {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, p := range paths {
		fmt.Fprintf(&b, "%s  %s\n", r.checksums[p], p)
	}

	path := filepath.Join(r.OutputDir, ChecksumFileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, "failed to write checksums", err)
	}
	return nil
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf("Done. %d files (%s) written in %v to %s",
		r.TotalFiles,
		formatBytes(r.TotalSize),
		r.Duration.Round(time.Millisecond),
		r.OutputDir,
	)
}

// formatBytes formats bytes into human-readable format.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
