package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cloudphish/internal/cli"
	"github.com/MKhiriev/go-cloudphish/internal/config"
	"github.com/MKhiriev/go-cloudphish/internal/logger"
	"github.com/MKhiriev/go-cloudphish/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	env, err := config.ParseEnvironment()
	if err != nil {
		logger.NewCLILogger("cloudphish", "").Fatal().Err(err).Msg("error reading environment")
	}

	flags := cli.NewFlags(env)
	cmd := cli.CreateRootCommand(flags, cli.NewClient)
	cmd.Version = models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.NewCLILogger("cloudphish", flags.LogLevel).Fatal().Err(err).Msg("cloudphish failed")
	}
}
