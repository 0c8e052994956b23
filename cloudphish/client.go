package cloudphish

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/MKhiriev/go-cloudphish/internal/config"
	"github.com/MKhiriev/go-cloudphish/internal/logger"
	"github.com/MKhiriev/go-cloudphish/internal/utils"
	"github.com/rs/zerolog"
)

// Profile is the set of connection settings a Client is built from.
type Profile = config.Profile

// Client talks to one cloudphish node. It holds no mutable state after
// construction.
type Client struct {
	profile config.Profile
	baseURL string

	client *utils.HTTPClient
	logger *logger.Logger
}

type options struct {
	overrides   config.Overrides
	configPaths []string
	configFile  string
	timeout     time.Duration
	logger      *logger.Logger
}

// Option configures New and NewFromProfile.
type Option func(*options)

// WithServer replaces the profile's server.
func WithServer(server string) Option {
	return func(o *options) { o.overrides.Server = server }
}

// WithPort replaces the profile's port.
func WithPort(port int) Option {
	return func(o *options) { o.overrides.Port = port }
}

// WithCABundle replaces the profile's ca_bundle_file: a PEM bundle path or
// a boolean literal.
func WithCABundle(caBundle string) Option {
	return func(o *options) { o.overrides.CABundle = caBundle }
}

// WithConfigPaths replaces the standard config search paths.
func WithConfigPaths(paths ...string) Option {
	return func(o *options) { o.configPaths = slices.Clone(paths) }
}

// WithConfigFile adds a config file with the highest precedence to the
// standard search paths.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// WithTimeout sets a whole-request timeout. Zero keeps the transport
// default.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New loads the layered configuration, resolves profile (applying
// CLOUDPHISH_* environment overrides and then the WithServer / WithPort /
// WithCABundle options) and returns a Client for it.
//
// Returns an error matching [ErrConfiguration] when no config file exists,
// the profile is missing or the resolved profile is unusable.
func New(profile string, opts ...Option) (*Client, error) {
	o := newOptions(opts)

	paths := o.configPaths
	if len(paths) == 0 {
		env, err := config.ParseEnvironment()
		if err != nil {
			return nil, &ConfigurationError{Profile: profile, Err: err}
		}
		paths = config.DefaultPaths(env.ConfigFile, o.configFile)
	} else if o.configFile != "" {
		paths = append(paths, o.configFile)
	}

	set, err := config.NewLoader(o.logger, paths...).Load()
	if err != nil {
		return nil, err
	}

	p, err := config.ResolveProfile(set, profile, o.overrides)
	if err != nil {
		return nil, err
	}

	return newClient(p, o)
}

// NewFromProfile returns a Client for p without reading any config file.
// Environment overrides and options are applied as in New.
func NewFromProfile(p Profile, opts ...Option) (*Client, error) {
	o := newOptions(opts)

	resolved, err := config.BuildProfile(p, o.overrides)
	if err != nil {
		return nil, err
	}

	return newClient(resolved, o)
}

func newClient(p config.Profile, o *options) (*Client, error) {
	trust := p.Trust()

	var rootCAs []byte
	if trust.CABundlePath != "" {
		pemData, err := os.ReadFile(trust.CABundlePath)
		if err != nil {
			return nil, &ConfigurationError{
				Profile: p.Name,
				Err:     fmt.Errorf("%w: read ca bundle: %w", ErrInvalidProfile, err),
			}
		}
		rootCAs = pemData
	}

	client, err := utils.NewHTTPClient(utils.TransportOptions{
		BaseURL:            p.BaseURL(),
		RootCAsPEM:         rootCAs,
		InsecureSkipVerify: !trust.Verify,
		IgnoreSystemProxy:  p.IgnoreSystemProxy,
		Timeout:            o.timeout,
		Logger:             o.logger,
	})
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCABundle) {
			return nil, &ConfigurationError{
				Profile: p.Name,
				Err:     fmt.Errorf("%w: %s: %w", ErrInvalidProfile, trust.CABundlePath, err),
			}
		}
		return nil, fmt.Errorf("create http client: %w", err)
	}

	log := o.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("profile", p.Name).Str("base_url", p.BaseURL())
	})

	log.Debug().
		Bool("verify_tls", trust.Verify).
		Str("ca_bundle", trust.CABundlePath).
		Bool("ignore_system_proxy", p.IgnoreSystemProxy).
		Msg("cloudphish client ready")

	return &Client{
		profile: p,
		baseURL: p.BaseURL(),
		client:  client,
		logger:  log,
	}, nil
}

// BaseURL returns https://{server}:{port}/.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Profile returns the resolved profile the client was built from.
func (c *Client) Profile() Profile {
	return c.profile
}
