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
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/h2c-tools/torturegen/pkg/errors"
	"github.com/h2c-tools/torturegen/pkg/manifest"
)

// ManifestFileName is the file each release's documents are written to.
const ManifestFileName = "manifests.yaml"

// Config holds the generation parameters.
type Config struct {
	// Scale is the n parameter. Must be >= 1.
	Scale int

	// OutputDir is the corpus root. Empty selects DefaultOutputDir(Scale).
	OutputDir string
}

// DefaultOutputDir returns the scale-named temp directory used when no
// output directory is given.
func DefaultOutputDir(n int) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("h2c-torture-%d", n), "manifests")
}

// ReleaseDirName returns the per-release subdirectory name.
func ReleaseDirName(release int) string {
	return fmt.Sprintf("release-%03d", release)
}

// Generator writes a complete torture-test corpus for one scale factor.
// Generation is strictly sequential, release by release; the only shared
// state is the read-only corpus computed once in New.
type Generator struct {
	cfg    Config
	corpus *manifest.Corpus
}

// New validates the configuration and derives the global name sequences.
// A scale below 1 is the single validated precondition of the whole tool:
// it fails here, before anything touches the filesystem.
func New(cfg Config) (*Generator, error) {
	if cfg.Scale < 1 {
		return nil, errors.NewWithContext(
			errors.ErrCodeInvalidInput,
			"scale factor n must be >= 1",
			map[string]any{"scale": cfg.Scale},
		)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir(cfg.Scale)
	}

	return &Generator{
		cfg:    cfg,
		corpus: manifest.NewCorpus(cfg.Scale),
	}, nil
}

// Run writes one manifests.yaml per release under the output directory and a
// checksums.txt at its root. Any directory or write failure aborts the run
// immediately; partial output is acceptable because the corpus is
// idempotently regenerable from the scale alone.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	res := &Result{
		OutputDir: g.cfg.OutputDir,
		checksums: make(map[string]string, g.cfg.Scale),
	}

	for r := 0; r < g.cfg.Scale; r++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "generation cancelled", err)
		}

		if err := g.writeRelease(r, res); err != nil {
			return nil, err
		}
	}

	if err := res.writeChecksums(); err != nil {
		return nil, err
	}

	res.TotalFiles = len(res.Files)
	res.Duration = time.Since(start)

	slog.Info("corpus generated",
		"releases", g.cfg.Scale,
		"files", res.TotalFiles,
		"size_bytes", res.TotalSize,
		"duration_sec", res.Duration.Seconds(),
		"output_dir", res.OutputDir,
	)

	return res, nil
}

// writeRelease assembles and writes a single release's manifest file.
func (g *Generator) writeRelease(release int, res *Result) error {
	releaseDir := filepath.Join(g.cfg.OutputDir, ReleaseDirName(release))
	if err := os.MkdirAll(releaseDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO,
			fmt.Sprintf("failed to create release directory %s", releaseDir), err)
	}

	doc, err := manifest.EncodeRelease(g.corpus, release)
	if err != nil {
		return err
	}

	path := filepath.Join(releaseDir, ManifestFileName)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO,
			fmt.Sprintf("failed to write %s", path), err)
	}

	res.addFile(path, doc)

	slog.Debug("release written",
		"release", release,
		"path", path,
		"size_bytes", len(doc),
	)

	return nil
}
