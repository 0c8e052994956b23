// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that p can be used to reach a cloudphish node: a
// non-empty server and a port in 1..65535.
func (p *Profile) validate() error {
	if strings.TrimSpace(p.Server) == "" {
		return &ConfigurationError{Profile: p.Name, Err: fmt.Errorf("%w: empty %s", ErrInvalidProfile, KeyServer)}
	}

	if p.Port < 1 || p.Port > 65535 {
		return &ConfigurationError{Profile: p.Name, Err: fmt.Errorf("%w: %s %d out of range", ErrInvalidProfile, KeyPort, p.Port)}
	}

	return nil
}
