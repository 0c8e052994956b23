// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Recognised keys of a profile section.
const (
	KeyServer            = "server"
	KeyPort              = "port"
	KeyCABundleFile      = "ca_bundle_file"
	KeyIgnoreSystemProxy = "ignore_system_proxy"
)

// DefaultProfile is the profile used when the caller does not pick one.
const DefaultProfile = "default"

// Profile is the connection settings of one cloudphish deployment, decoded
// from a single INI section.
type Profile struct {
	// Name is the INI section name.
	Name string

	// Server is the hostname or IP address of the cloudphish node.
	Server string

	// Port is the TCP port of the cloudphish API.
	Port int

	// CABundle is the raw ca_bundle_file value: a path to a PEM bundle or a
	// boolean literal. Use [Profile.Trust] to interpret it.
	CABundle string

	// IgnoreSystemProxy makes the client bypass any proxy configured through
	// the environment (HTTPS_PROXY and friends).
	IgnoreSystemProxy bool
}

// TrustAnchor is the interpreted TLS verification setting of a profile.
type TrustAnchor struct {
	// Verify is false when certificate verification is disabled.
	Verify bool
	// CABundlePath, when non-empty, is the only set of trusted roots.
	CABundlePath string
}

// SystemTrust reports whether the system certificate pool is used.
func (t TrustAnchor) SystemTrust() bool {
	return t.Verify && t.CABundlePath == ""
}

// Trust interprets CABundle. An empty value or a true literal selects the
// system store, a false literal disables verification and anything else is
// taken as a bundle path.
func (p Profile) Trust() TrustAnchor {
	raw := strings.TrimSpace(p.CABundle)
	if raw == "" {
		return TrustAnchor{Verify: true}
	}
	if verify, ok := parseBoolLiteral(raw); ok {
		return TrustAnchor{Verify: verify}
	}

	return TrustAnchor{Verify: true, CABundlePath: raw}
}

// BaseURL returns https://{server}:{port}/.
func (p Profile) BaseURL() string {
	return "https://" + p.Server + ":" + strconv.Itoa(p.Port) + "/"
}

// ConfigSet is the merged content of every config file that was found.
type ConfigSet struct {
	profiles map[string]Profile
	names    []string
	files    []string
	checked  []string
}

// Names returns profile names in the order they first appear.
func (s *ConfigSet) Names() []string {
	return slices.Clone(s.names)
}

// Files returns the config files that were read, lowest precedence first.
func (s *ConfigSet) Files() []string {
	return slices.Clone(s.files)
}

// Has reports whether a profile named name exists.
func (s *ConfigSet) Has(name string) bool {
	_, ok := s.profiles[name]
	return ok
}

// Profile returns the profile named name, or a *ConfigurationError wrapping
// ErrProfileNotFound.
func (s *ConfigSet) Profile(name string) (Profile, error) {
	p, ok := s.profiles[name]
	if !ok {
		return Profile{}, &ConfigurationError{Profile: name, Paths: slices.Clone(s.checked), Err: ErrProfileNotFound}
	}

	return p, nil
}

// newConfigSet decodes every non-default section of f into a Profile. Keys
// of the DEFAULT section are inherited by all profiles.
func newConfigSet(f *ini.File, files, checked []string) (*ConfigSet, error) {
	set := &ConfigSet{
		profiles: make(map[string]Profile),
		files:    files,
		checked:  checked,
	}

	defaults := f.Section(ini.DefaultSection)
	for _, section := range f.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}

		p, err := decodeProfile(name, defaults, section)
		if err != nil {
			return nil, &ConfigurationError{Profile: name, Paths: slices.Clone(files), Err: err}
		}

		set.profiles[name] = p
		set.names = append(set.names, name)
	}

	return set, nil
}

// decodeProfile reads only the section's own keys, falling back to
// [DEFAULT]. ini.v1 would otherwise resolve a missing key in [a.b] from its
// parent section [a].
func decodeProfile(name string, defaults, section *ini.Section) (Profile, error) {
	own := section.KeysHash()
	inherited := map[string]string{}
	if defaults != nil {
		inherited = defaults.KeysHash()
	}

	lookup := func(key string) string {
		if v, ok := own[key]; ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(inherited[key])
	}

	p := Profile{
		Name:     name,
		Server:   lookup(KeyServer),
		CABundle: lookup(KeyCABundleFile),
	}

	if raw := lookup(KeyPort); raw != "" {
		port, err := parsePort(raw)
		if err != nil {
			return Profile{}, err
		}
		p.Port = port
	}

	if raw := lookup(KeyIgnoreSystemProxy); raw != "" {
		ignore, ok := parseBoolLiteral(raw)
		if !ok {
			return Profile{}, fmt.Errorf("%w: %s is not a boolean: %q", ErrInvalidProfile, KeyIgnoreSystemProxy, raw)
		}
		p.IgnoreSystemProxy = ignore
	}

	return p, nil
}

func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: port %q is not an integer", ErrInvalidProfile, raw)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("%w: port %d out of range", ErrInvalidProfile, port)
	}

	return port, nil
}

// parseBoolLiteral accepts 1/yes/true/on and 0/no/false/off,
// case-insensitively.
func parseBoolLiteral(raw string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "yes", "true", "on":
		return true, true
	case "0", "no", "false", "off":
		return false, true
	}

	return false, false
}
