package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-silk-reader/internal/adapter"
	"github.com/MKhiriev/go-silk-reader/internal/config"
	"github.com/MKhiriev/go-silk-reader/internal/crypto"
	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/service"
	"github.com/MKhiriev/go-silk-reader/internal/store"
	"github.com/MKhiriev/go-silk-reader/models"
)

const usage = `usage: silkread <command> [flags] <file>

commands:
  decode   [-o out.json] <user.dat>          print a summary, optionally save the JSON
  export   [-o out] [-format json|yaml] <user.dat>
  encode   [-o user1.dat] <save.json>       build a save container from JSON
  stats    <user.dat>                        print the report as JSON
  view     <user.dat>                        interactive report viewer
  watch    [-d dsn] [-watch-interval 5s] <user.dat>
  history  [-d dsn] [-source path] [-limit n]
  remote   [-remote host:port] [-export json|yaml] <user.dat>
  version
`

type command func(ctx context.Context, args []string) error

type App struct {
	saves     service.SaveService
	viewer    Viewer
	buildInfo models.AppBuildInfo

	stdout io.Writer
	stderr io.Writer

	openStorages func(ctx context.Context, cfg config.DB, logger *logger.Logger) (*store.Storages, error)
	newRemote    func(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (adapter.RemoteDecoder, error)

	logger *logger.Logger
}

func NewApp(viewer Viewer, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		saves:        service.NewSaveService(crypto.NewSaveCipher(), logger),
		viewer:       viewer,
		buildInfo:    buildInfo,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		openStorages: store.NewStorages,
		newRemote:    adapter.NewHTTPRemoteDecoder,
		logger:       logger,
	}
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"decode":  a.decode,
		"export":  a.export,
		"encode":  a.encode,
		"stats":   a.stats,
		"view":    a.view,
		"watch":   a.watch,
		"history": a.history,
		"remote":  a.remote,
		"version": a.version,
	}
}

// Run implements Client.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.stderr, usage)
		return ErrUsage
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		fmt.Fprint(a.stdout, usage)
		return nil
	}

	cmd, ok := a.commands()[name]
	if !ok {
		fmt.Fprint(a.stderr, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	ctx = a.logger.With().Str("command", name).Logger().WithContext(ctx)
	a.logger.Debug().Str("func", "*App.Run").Str("command", name).Strs("args", args[1:]).Msg("running command")

	return cmd(ctx, args[1:])
}
