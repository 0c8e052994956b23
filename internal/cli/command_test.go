package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-cloudphish/cloudphish"
	"github.com/MKhiriev/go-cloudphish/internal/config"
	"github.com/MKhiriev/go-cloudphish/internal/mock"
	"github.com/MKhiriev/go-cloudphish/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testConfig = `
[default]
server = cloudphish.local
port = 443

[lab]
server = 10.0.0.5
port = 8443
ca_bundle_file = false
`

// clearEnv keeps CLOUDPHISH_* overrides on the host out of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG", "LOG_LEVEL", "SERVER", "PORT", "CA_BUNDLE_FILE"} {
		t.Setenv(config.EnvPrefix+key, "")
		require.NoError(t, os.Unsetenv(config.EnvPrefix+key))
	}
}

type harness struct {
	client    *mock.MockCloudphish
	stdout    bytes.Buffer
	stderr    bytes.Buffer
	profile   cloudphish.Profile
	factoryOK bool
}

// newHarness writes a config file, isolates HOME and returns a harness whose
// factory hands out a gomock client.
func newHarness(t *testing.T) (*harness, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "ace_cloudphish.ini")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	ctrl := gomock.NewController(t)
	return &harness{client: mock.NewMockCloudphish(ctrl)}, path
}

func (h *harness) factory(profile cloudphish.Profile, _ ...cloudphish.Option) (Cloudphish, error) {
	h.profile = profile
	h.factoryOK = true
	return h.client, nil
}

func (h *harness) execute(args ...string) error {
	cmd := CreateRootCommand(NewFlags(nil), h.factory)
	cmd.SetArgs(args)
	cmd.SetOut(&h.stdout)
	cmd.SetErr(&h.stderr)
	return cmd.Execute()
}

func TestCommand_Submit(t *testing.T) {
	h, cfg := newHarness(t)
	h.client.EXPECT().
		SubmitText(gomock.Any(), models.SubmitRequest{URL: "http://example.com", Reprocess: true, Alert: true}).
		Return(`{"status": "NEW"}`, nil)

	err := h.execute("--config", cfg, "-s", "http://example.com", "-r", "-a")

	require.NoError(t, err)
	assert.Equal(t, "{\"status\": \"NEW\"}\n", h.stdout.String())
	assert.Equal(t, config.DefaultProfile, h.profile.Name)
}

// TestCommand_SubmitWinsOverClear verifies the submit > get > clear priority:
// only the submit call is made when several actions are given.
func TestCommand_SubmitWinsOverClear(t *testing.T) {
	h, cfg := newHarness(t)
	h.client.EXPECT().
		SubmitText(gomock.Any(), models.SubmitRequest{URL: "http://a.example"}).
		Return("ok", nil)

	err := h.execute("--config", cfg, "-s", "http://a.example", "-c", "http://b.example", "-g", "abc")

	require.NoError(t, err)
	assert.Equal(t, "ok\n", h.stdout.String())
}

func TestCommand_GetWinsOverClear(t *testing.T) {
	h, cfg := newHarness(t)
	h.client.EXPECT().Get(gomock.Any(), "abc", false).Return("content", nil)

	err := h.execute("--config", cfg, "--get", "abc", "--clear", "http://b.example")

	require.NoError(t, err)
	assert.Equal(t, "content\n", h.stdout.String())
}

func TestCommand_GetCompressed(t *testing.T) {
	h, cfg := newHarness(t)
	h.client.EXPECT().Get(gomock.Any(), "abc", true).Return("archive", nil)

	err := h.execute("--config", cfg, "-g", "abc", "--compressed")

	require.NoError(t, err)
}

func TestCommand_ClearPrintsJSON(t *testing.T) {
	h, cfg := newHarness(t)
	h.client.EXPECT().Clear(gomock.Any(), "http://example.com").Return(models.Result{"result": "OK"}, nil)

	err := h.execute("--config", cfg, "-e", "lab", "-c", "http://example.com")

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"result\": \"OK\"\n}\n", h.stdout.String())
	assert.Equal(t, "lab", h.profile.Name)
}

// TestCommand_NoAction verifies that without an action flag nothing is
// called and the command succeeds.
func TestCommand_NoAction(t *testing.T) {
	h, cfg := newHarness(t)

	err := h.execute("--config", cfg)

	require.NoError(t, err)
	assert.True(t, h.factoryOK)
	assert.Empty(t, h.stdout.String())
}

// TestCommand_PassesLoadedProfile verifies the factory receives the profile
// decoded from the files the command already read.
func TestCommand_PassesLoadedProfile(t *testing.T) {
	h, cfg := newHarness(t)

	err := h.execute("--config", cfg, "-e", "lab")

	require.NoError(t, err)
	assert.Equal(t, cloudphish.Profile{Name: "lab", Server: "10.0.0.5", Port: 8443, CABundle: "false"}, h.profile)
}

// TestCommand_ReadsConfigOnce verifies that removing the config file after
// the command loaded it does not affect building the real client.
func TestCommand_ReadsConfigOnce(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "c.ini")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	var built Cloudphish
	cmd := CreateRootCommand(NewFlags(nil), func(p cloudphish.Profile, opts ...cloudphish.Option) (Cloudphish, error) {
		require.NoError(t, os.Remove(path))
		c, err := NewClient(p, opts...)
		built = c
		return c, err
	})
	cmd.SetArgs([]string{"--config", path, "-e", "lab"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	require.IsType(t, &cloudphish.Client{}, built)
	assert.Equal(t, "https://10.0.0.5:8443/", built.(*cloudphish.Client).BaseURL())
}

func TestCommand_InvalidEnvironment(t *testing.T) {
	h, cfg := newHarness(t)

	err := h.execute("--config", cfg, "-e", "production", "-s", "http://example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEnvironment)
	assert.Contains(t, err.Error(), "default, lab")
	assert.False(t, h.factoryOK)
}

func TestCommand_PropagatesClientErrors(t *testing.T) {
	h, cfg := newHarness(t)
	remoteErr := &cloudphish.RemoteError{StatusCode: 500, Body: "boom"}
	h.client.EXPECT().Get(gomock.Any(), "abc", false).Return("", remoteErr)

	err := h.execute("--config", cfg, "-g", "abc")

	assert.ErrorIs(t, err, cloudphish.ErrRemote)
	assert.Empty(t, h.stdout.String())
}

func TestCommand_FactoryError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "c.ini")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	cmd := CreateRootCommand(NewFlags(nil), func(cloudphish.Profile, ...cloudphish.Option) (Cloudphish, error) {
		return nil, assert.AnError
	})
	cmd.SetArgs([]string{"--config", path, "-s", "http://example.com"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.ErrorIs(t, cmd.Execute(), assert.AnError)
}

func TestCommand_InvalidLogLevel(t *testing.T) {
	h, cfg := newHarness(t)

	err := h.execute("--config", cfg, "--log-level", "loud")

	require.Error(t, err)
	assert.False(t, h.factoryOK)
}

func TestCommand_RejectsPositionalArgs(t *testing.T) {
	h, cfg := newHarness(t)

	err := h.execute("--config", cfg, "http://example.com")

	require.Error(t, err)
	assert.False(t, h.factoryOK)
}

func TestCommand_NoConfigFiles(t *testing.T) {
	for _, p := range config.DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			t.Skipf("host has a config file at %s", p)
		}
	}
	h, _ := newHarness(t)

	err := h.execute("-s", "http://example.com")

	assert.ErrorIs(t, err, config.ErrNoConfigFiles)
	assert.False(t, h.factoryOK)
}

func TestCommand_DebugLogsToStderr(t *testing.T) {
	h, cfg := newHarness(t)

	err := h.execute("--config", cfg, "--log-level", "debug")

	require.NoError(t, err)
	assert.Contains(t, h.stderr.String(), `"message":"dispatching"`)
	assert.Empty(t, h.stdout.String())
}
