package cli

import "github.com/MKhiriev/go-cloudphish/internal/config"

// Flags holds all command-line flag values
type Flags struct {
	// Profile selection
	Environment string
	ConfigFile  string

	// Actions, first non-empty wins in this order
	SubmitURL string
	SHA256    string
	ClearURL  string

	// Submit / get modifiers
	Reprocess  bool
	Alert      bool
	Compressed bool

	LogLevel string
}

// NewFlags creates a new Flags instance with default values. CLOUDPHISH_*
// environment variables seed the defaults of --config and --log-level.
func NewFlags(env *config.Environment) *Flags {
	flags := &Flags{
		Environment: config.DefaultProfile,
		LogLevel:    "warn",
	}

	if env != nil {
		flags.ConfigFile = env.ConfigFile
		if env.LogLevel != "" {
			flags.LogLevel = env.LogLevel
		}
	}

	return flags
}

// action is the single client call selected by the flags.
type action int

const (
	actionNone action = iota
	actionSubmit
	actionGet
	actionClear
)

// selectAction applies the fixed priority submit > get > clear.
func (f *Flags) selectAction() action {
	switch {
	case f.SubmitURL != "":
		return actionSubmit
	case f.SHA256 != "":
		return actionGet
	case f.ClearURL != "":
		return actionClear
	default:
		return actionNone
	}
}

func (a action) String() string {
	switch a {
	case actionSubmit:
		return "submit"
	case actionGet:
		return "get"
	case actionClear:
		return "clear"
	default:
		return "none"
	}
}
