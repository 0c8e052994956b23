package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-cloudphish/cloudphish"
	"github.com/MKhiriev/go-cloudphish/internal/config"
	"github.com/MKhiriev/go-cloudphish/internal/logger"
	"github.com/MKhiriev/go-cloudphish/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrInvalidEnvironment is returned when -e names a profile that is not
// configured.
var ErrInvalidEnvironment = errors.New("invalid environment")

// CreateRootCommand creates and configures the root cobra command. factory
// builds the client once flags are parsed; pass NewClient in production.
func CreateRootCommand(flags *Flags, factory ClientFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cloudphish",
		Short: "simple user interface to cloudphish",
		Long: `cloudphish submits URLs to an ACE cloudphish node, downloads cached
content and clears cached results.

Exactly one action runs, in this order of priority: --submit, --get, --clear.

Examples:
  cloudphish -s http://example.com            # submit / check on a URL
  cloudphish -e lab -s http://example.com -r  # force reprocessing on the lab node
  cloudphish -g <sha256>                      # print cached content
  cloudphish -c http://example.com            # clear the cached result`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, factory)
		},
	}

	setupFlags(rootCmd.Flags(), flags)

	return rootCmd
}

func setupFlags(fs *pflag.FlagSet, flags *Flags) {
	fs.StringVarP(&flags.Environment, "environment", "e", flags.Environment, "select the ace cloudphish node you want to work with")
	fs.StringVarP(&flags.SubmitURL, "submit", "s", "", "submit a url/check on a url")
	fs.BoolVarP(&flags.Reprocess, "reprocess", "r", false, "make cloudphish reprocess a url")
	fs.BoolVarP(&flags.Alert, "alert", "a", false, "ACE alert if cloudphish finds a detection, and an alert hasn't already been generated")
	fs.StringVarP(&flags.ClearURL, "clear", "c", "", "clear the cloudphish cache for a url")
	fs.StringVarP(&flags.SHA256, "get", "g", "", "get the cached content")
	fs.BoolVar(&flags.Compressed, "compressed", false, "with --get, download the alert archive instead of the raw content")
	fs.StringVar(&flags.ConfigFile, "config", flags.ConfigFile, "extra config file, overrides the standard ace_cloudphish.ini locations")
	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, flags *Flags, factory ClientFactory) error {
	level, err := logger.ParseLevel(flags.LogLevel)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cmd.ErrOrStderr(), "cloudphish-cli", level)

	paths := config.DefaultPaths(flags.ConfigFile)
	set, err := config.NewLoader(log, paths...).Load()
	if err != nil {
		return err
	}

	if !set.Has(flags.Environment) {
		return fmt.Errorf("%w: %q (choose from %s)", ErrInvalidEnvironment, flags.Environment, strings.Join(set.Names(), ", "))
	}
	log.Debug().Strs("files", set.Files()).Msg("configuration loaded")

	profile, err := set.Profile(flags.Environment)
	if err != nil {
		return err
	}

	client, err := factory(profile, cloudphish.WithLogger(log))
	if err != nil {
		return err
	}

	ctx := log.WithContext(cmd.Context())
	return dispatch(ctx, cmd.OutOrStdout(), flags, client)
}

func dispatch(ctx context.Context, out io.Writer, flags *Flags, client Cloudphish) error {
	act := flags.selectAction()
	logger.FromContext(ctx).Debug().
		Str("environment", flags.Environment).
		Stringer("action", act).
		Msg("dispatching")

	switch act {
	case actionSubmit:
		text, err := client.SubmitText(ctx, models.SubmitRequest{
			URL:       flags.SubmitURL,
			Reprocess: flags.Reprocess,
			Alert:     flags.Alert,
		})
		if err != nil {
			return err
		}
		return printText(out, text)

	case actionGet:
		text, err := client.Get(ctx, flags.SHA256, flags.Compressed)
		if err != nil {
			return err
		}
		return printText(out, text)

	case actionClear:
		result, err := client.Clear(ctx, flags.ClearURL)
		if err != nil {
			return err
		}
		return printJSON(out, result)
	}

	return nil
}

func printText(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
