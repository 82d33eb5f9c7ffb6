package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/go-silk-reader/internal/config"
	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/report"
	"github.com/MKhiriev/go-silk-reader/internal/service"
	"github.com/MKhiriev/go-silk-reader/internal/utils"
	"github.com/MKhiriev/go-silk-reader/internal/workers"
	"github.com/MKhiriev/go-silk-reader/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// DefaultEncodeOutput is where encode writes the container without -o.
const DefaultEncodeOutput = "user1.dat"

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func loadConfig(fs *flag.FlagSet, args []string) (*config.StructuredConfig, error) {
	cfg, err := config.Load(fs, args)
	if err != nil {
		return nil, err
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile parses fs with the shared configuration flags and reads the
// single positional file argument.
func loadFile(fs *flag.FlagSet, args []string) (*config.StructuredConfig, string, []byte, error) {
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return nil, "", nil, err
	}
	if fs.NArg() < 1 {
		return nil, "", nil, ErrMissingFile
	}

	path := fs.Arg(0)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return cfg, path, raw, nil
}

func (a *App) decode(ctx context.Context, args []string) error {
	fs := a.newFlagSet("decode")
	output := fs.String("o", "", "also write the pretty-printed JSON to this file")

	_, _, raw, err := loadFile(fs, args)
	if err != nil {
		return err
	}

	save, err := a.saves.Decode(ctx, raw)
	if err != nil {
		return err
	}

	fmt.Fprint(a.stdout, report.Summary(report.Build(save)))

	if *output == "" {
		return nil
	}
	pretty, err := save.Document.MarshalIndent()
	if err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}
	if err = os.WriteFile(*output, pretty, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", *output, err)
	}
	fmt.Fprintf(a.stdout, "\nDecrypted JSON saved to %s\n", *output)
	return nil
}

func (a *App) export(ctx context.Context, args []string) error {
	fs := a.newFlagSet("export")
	output := fs.String("o", "", "output file (stdout when empty)")
	rawFormat := fs.String("format", string(models.ExportJSON), "json or yaml")

	_, _, raw, err := loadFile(fs, args)
	if err != nil {
		return err
	}
	format, err := models.ParseExportFormat(*rawFormat)
	if err != nil {
		return err
	}

	out, err := a.saves.Export(ctx, raw, format)
	if err != nil {
		return err
	}

	return a.writeOutput(*output, out)
}

func (a *App) encode(ctx context.Context, args []string) error {
	fs := a.newFlagSet("encode")
	output := fs.String("o", DefaultEncodeOutput, "container file to write")

	_, _, document, err := loadFile(fs, args)
	if err != nil {
		return err
	}

	container, err := a.saves.Encode(ctx, document)
	if err != nil {
		return err
	}

	if err = os.WriteFile(*output, container, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", *output, err)
	}
	fmt.Fprintf(a.stdout, "Encrypted save written to %s\n", *output)
	return nil
}

func (a *App) stats(ctx context.Context, args []string) error {
	fs := a.newFlagSet("stats")

	_, _, raw, err := loadFile(fs, args)
	if err != nil {
		return err
	}

	rep, err := a.saves.Report(ctx, raw)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	return a.writeOutput("", append(out, '\n'))
}

func (a *App) view(ctx context.Context, args []string) error {
	fs := a.newFlagSet("view")

	_, path, raw, err := loadFile(fs, args)
	if err != nil {
		return err
	}

	rep, err := a.saves.Report(ctx, raw)
	if err != nil {
		return err
	}

	return a.viewer.View(ctx, rep, path)
}

func (a *App) watch(ctx context.Context, args []string) error {
	log := logger.FromContext(ctx)
	fs := a.newFlagSet("watch")

	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return ErrMissingFile
	}
	path := fs.Arg(0)

	dbCfg, err := cfg.StorageConfig()
	if err != nil {
		return err
	}
	workersCfg, err := cfg.WorkersConfig()
	if err != nil {
		return err
	}

	storages, err := a.openStorages(ctx, dbCfg, a.logger)
	if err != nil {
		return fmt.Errorf("error opening snapshot storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Str("func", "*App.watch").Msg("error closing storages")
		}
	}()

	snapshots := service.NewSnapshotService(a.saves, storages.SnapshotRepository, a.logger)
	jobs := workers.NewWorkers(
		workers.NewWatchWorker(service.NewWatchJob(snapshots), path, workersCfg.WatchInterval, a.logger),
	)

	fmt.Fprintf(a.stdout, "Watching %s every %s, press Ctrl+C to stop\n", path, workersCfg.WatchInterval)
	jobs.Run(ctx)
	<-ctx.Done()
	jobs.Stop()

	return nil
}

func (a *App) history(ctx context.Context, args []string) error {
	log := logger.FromContext(ctx)
	fs := a.newFlagSet("history")
	source := fs.String("source", "", "only snapshots of this save file")
	limit := fs.Uint64("limit", service.DefaultListLimit, "maximum number of snapshots")

	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}
	dbCfg, err := cfg.StorageConfig()
	if err != nil {
		return err
	}

	storages, err := a.openStorages(ctx, dbCfg, a.logger)
	if err != nil {
		return fmt.Errorf("error opening snapshot storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Str("func", "*App.history").Msg("error closing storages")
		}
	}()

	snapshots, err := service.NewSnapshotService(a.saves, storages.SnapshotRepository, a.logger).
		List(ctx, *source, *limit)
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		fmt.Fprintln(a.stdout, "No snapshots recorded")
		return nil
	}

	fmt.Fprintln(a.stdout, renderHistory(snapshots))
	return nil
}

func renderHistory(snapshots []models.Snapshot) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RECORDED", "SOURCE", "PLAY TIME", "COMPLETION", "ID")
	for _, s := range snapshots {
		t.Row(
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.Source,
			s.PlayTime,
			strconv.FormatFloat(s.Completion, 'f', -1, 64)+"%",
			s.ID,
		)
	}
	return t.String()
}

func (a *App) remote(ctx context.Context, args []string) error {
	fs := a.newFlagSet("remote")
	exportFormat := fs.String("export", "", "return the document as json or yaml instead of a summary")

	cfg, _, raw, err := loadFile(fs, args)
	if err != nil {
		return err
	}
	adapterCfg, err := cfg.AdapterConfig()
	if err != nil {
		return err
	}

	remote, err := a.newRemote(adapterCfg, cfg.App, a.logger)
	if err != nil {
		return err
	}
	ctx = utils.WithTraceID(ctx, utils.NewUUIDGenerator().Generate())

	if *exportFormat != "" {
		format, err := models.ParseExportFormat(*exportFormat)
		if err != nil {
			return err
		}
		out, err := remote.Export(ctx, raw, format)
		if err != nil {
			return err
		}
		return a.writeOutput("", out)
	}

	rep, err := remote.Report(ctx, raw)
	if err != nil {
		return err
	}
	fmt.Fprint(a.stdout, report.Summary(rep))
	return nil
}

func (a *App) version(_ context.Context, _ []string) error {
	fmt.Fprint(a.stdout, a.buildInfo.String())
	return nil
}

func (a *App) writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := a.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
