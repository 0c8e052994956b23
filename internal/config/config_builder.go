package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Overrides replaces individual profile fields. Zero values leave the
// profile untouched.
type Overrides struct {
	Server   string
	Port     int
	CABundle string
}

func (o Overrides) profile() *Profile {
	return &Profile{Server: o.Server, Port: o.Port, CABundle: o.CABundle}
}

// profileBuilder stacks profile layers, later layers winning for non-zero
// fields.
type profileBuilder struct {
	layers []*Profile
	err    error
}

func newProfileBuilder(base Profile) *profileBuilder {
	layers := make([]*Profile, 0, 3)
	layers = append(layers, &base)

	return &profileBuilder{layers: layers}
}

func (b *profileBuilder) build() (Profile, error) {
	if b.err != nil {
		return Profile{}, &ConfigurationError{
			Profile: b.layers[0].Name,
			Err:     fmt.Errorf("error occured during building profile: %w", b.err),
		}
	}

	profile := new(Profile)
	for _, layer := range b.layers {
		if err := mergo.Merge(profile, layer, mergo.WithOverride); err != nil {
			return Profile{}, fmt.Errorf("error merging profile layers: %w", err)
		}
	}

	return *profile, profile.validate()
}

func (b *profileBuilder) withEnv() *profileBuilder {
	envCfg, err := ParseEnvironment()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envCfg.Overrides().profile())
	return b
}

func (b *profileBuilder) withOverrides(o Overrides) *profileBuilder {
	b.layers = append(b.layers, o.profile())
	return b
}

// ResolveProfile looks up name in set and applies, in increasing
// precedence, CLOUDPHISH_* environment overrides and the explicit overrides
// o. The result is validated before it is returned.
//
// Returns a *ConfigurationError wrapping [ErrProfileNotFound] or
// [ErrInvalidProfile] when the profile cannot be used.
func ResolveProfile(set *ConfigSet, name string, o Overrides) (Profile, error) {
	base, err := set.Profile(name)
	if err != nil {
		return Profile{}, err
	}

	return BuildProfile(base, o)
}

// BuildProfile applies environment and explicit overrides to base without
// any file lookup.
func BuildProfile(base Profile, o Overrides) (Profile, error) {
	return newProfileBuilder(base).
		withEnv().
		withOverrides(o).
		build()
}
