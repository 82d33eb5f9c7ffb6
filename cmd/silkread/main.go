package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-silk-reader/internal/client"
	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/tui"
	"github.com/MKhiriev/go-silk-reader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("silkread")
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app := client.NewApp(tui.New(buildInfo, log), buildInfo, log)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, client.FormatError(err))
		stop()
		os.Exit(1)
	}
}
