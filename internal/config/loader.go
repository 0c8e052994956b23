// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-cloudphish/internal/logger"
	"gopkg.in/ini.v1"
)

const (
	configFileName = "ace_cloudphish.ini"
	globalConfig   = "/etc/ace/cloudphish/" + configFileName
)

// Loader discovers and merges config files from an ordered list of candidate
// paths.
type Loader struct {
	paths  []string
	logger *logger.Logger
}

// NewLoader returns a Loader over paths, lowest precedence first. When paths
// is empty the result of [DefaultPaths] is used. A nil logger discards output.
func NewLoader(log *logger.Logger, paths ...string) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	if len(paths) == 0 {
		paths = DefaultPaths()
	}

	return &Loader{paths: slices.Clone(paths), logger: log}
}

// DefaultPaths returns the standard candidate config paths in increasing
// precedence, followed by any non-empty extra paths:
//  1. <install root>/etc/ace_cloudphish.ini
//  2. /etc/ace/cloudphish/ace_cloudphish.ini
//  3. ~/.ace/cloudphish/ace_cloudphish.ini
//
// The install root is the parent of the directory holding the running
// executable. Entries whose location cannot be determined are skipped.
func DefaultPaths(extra ...string) []string {
	paths := make([]string, 0, 3+len(extra))

	if exe, err := os.Executable(); err == nil {
		installRoot := filepath.Dir(filepath.Dir(exe))
		paths = append(paths, filepath.Join(installRoot, "etc", configFileName))
	}

	paths = append(paths, globalConfig)

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".ace", "cloudphish", configFileName))
	}

	for _, p := range extra {
		if p != "" {
			paths = append(paths, p)
		}
	}

	return paths
}

// Paths returns the candidate paths this loader checks.
func (l *Loader) Paths() []string {
	return slices.Clone(l.paths)
}

// Load reads every candidate path that exists and merges them so that a
// later file overrides an earlier one for the same (section, key) pair.
//
// Returns a *ConfigurationError wrapping [ErrNoConfigFiles] if none of the
// candidate paths exist, or a wrapped parse error if a file is malformed.
func (l *Loader) Load() (*ConfigSet, error) {
	found := make([]string, 0, len(l.paths))
	for _, path := range l.paths {
		info, err := os.Stat(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				l.logger.Warn().Err(err).Str("path", path).Msg("cannot stat config file")
			}
			continue
		}
		if info.IsDir() {
			continue
		}

		l.logger.Debug().Str("path", path).Msg("found config file")
		found = append(found, path)
	}

	if len(found) == 0 {
		l.logger.Error().Strs("paths", l.paths).Msg("no config files found")
		return nil, &ConfigurationError{Paths: slices.Clone(l.paths), Err: ErrNoConfigFiles}
	}

	sources := make([]any, 0, len(found))
	for _, path := range found {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		if err = checkSectionHeader(data); err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
		}
		sources = append(sources, data)
	}

	f, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:            true,
		IgnoreInlineComment:        true,
		AllowPythonMultilineValues: true,
	}, sources[0], sources[1:]...)
	if err != nil {
		return nil, fmt.Errorf("error parsing config files %v: %w", found, err)
	}

	return newConfigSet(f, found, slices.Clone(l.paths))
}

// checkSectionHeader rejects data whose first non-blank, non-comment line is
// not a [section] header. ini.v1 would silently file such keys under
// [DEFAULT].
func checkSectionHeader(data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			return nil
		}
		return fmt.Errorf("%w: line %d: %q", ErrMissingSectionHeader, lineNo, line)
	}

	return scanner.Err()
}

// Load is shorthand for NewLoader(nil, paths...).Load().
func Load(paths ...string) (*ConfigSet, error) {
	return NewLoader(nil, paths...).Load()
}
