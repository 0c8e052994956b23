package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Trust(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TrustAnchor
	}{
		{name: "empty uses system store", raw: "", want: TrustAnchor{Verify: true}},
		{name: "true literal", raw: "True", want: TrustAnchor{Verify: true}},
		{name: "yes literal", raw: "yes", want: TrustAnchor{Verify: true}},
		{name: "false literal disables verification", raw: "false", want: TrustAnchor{Verify: false}},
		{name: "zero literal", raw: "0", want: TrustAnchor{Verify: false}},
		{name: "path", raw: "/opt/ace/ssl/ca-chain.pem", want: TrustAnchor{Verify: true, CABundlePath: "/opt/ace/ssl/ca-chain.pem"}},
		{name: "path is trimmed", raw: "  ca.pem ", want: TrustAnchor{Verify: true, CABundlePath: "ca.pem"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Profile{CABundle: tt.raw}.Trust()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrustAnchor_SystemTrust(t *testing.T) {
	assert.True(t, TrustAnchor{Verify: true}.SystemTrust())
	assert.False(t, TrustAnchor{Verify: false}.SystemTrust())
	assert.False(t, TrustAnchor{Verify: true, CABundlePath: "x.pem"}.SystemTrust())
}

func TestProfile_BaseURL(t *testing.T) {
	p := Profile{Server: "cloudphish.local", Port: 8443}
	assert.Equal(t, "https://cloudphish.local:8443/", p.BaseURL())
}

func TestParsePort(t *testing.T) {
	port, err := parsePort(" 443 ")
	require.NoError(t, err)
	assert.Equal(t, 443, port)

	for _, raw := range []string{"0", "65536", "-1", "https"} {
		_, err := parsePort(raw)
		assert.ErrorIs(t, err, ErrInvalidProfile, raw)
	}
}

func TestConfigurationError_Error(t *testing.T) {
	err := &ConfigurationError{Profile: "lab", Paths: []string{"/a", "/b"}, Err: ErrProfileNotFound}

	assert.Equal(t, `profile not found (profile "lab"); config paths: [/a, /b]`, err.Error())
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.NotErrorIs(t, err, ErrNoConfigFiles)
}
