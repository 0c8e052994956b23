// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration matches every *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("configuration error")
	// ErrNoConfigFiles indicates that none of the candidate config paths exist.
	ErrNoConfigFiles = errors.New("no configuration files found")
	// ErrProfileNotFound indicates that the requested profile is not defined
	// in any of the merged config files.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidProfile indicates a profile whose values cannot be used to
	// reach a server (empty server, bad port, bad boolean literal).
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrMissingSectionHeader indicates a config file with a key before its
	// first [section] header.
	ErrMissingSectionHeader = errors.New("file contains no section headers")
)

// ConfigurationError describes a fatal configuration problem. Paths holds
// the candidate config paths that were checked, Profile the profile being
// resolved (if any).
type ConfigurationError struct {
	Profile string
	Paths   []string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Profile != "" {
		fmt.Fprintf(&b, " (profile %q)", e.Profile)
	}
	if len(e.Paths) > 0 {
		fmt.Fprintf(&b, "; config paths: [%s]", strings.Join(e.Paths, ", "))
	}

	return b.String()
}

func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
