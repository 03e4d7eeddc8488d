// Package cmdutil holds the setup shared by charnn subcommands: config
// resolution, logging, the run store, and loading trained runs.
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/charnn/pkg/artifact"
	"github.com/papercomputeco/charnn/pkg/config"
	"github.com/papercomputeco/charnn/pkg/eventstream"
	"github.com/papercomputeco/charnn/pkg/eventstream/kafka"
	"github.com/papercomputeco/charnn/pkg/eventstream/nop"
	"github.com/papercomputeco/charnn/pkg/logger"
	"github.com/papercomputeco/charnn/pkg/storage"
	"github.com/papercomputeco/charnn/pkg/storage/inmemory"
	"github.com/papercomputeco/charnn/pkg/storage/sqlite"
	"github.com/papercomputeco/charnn/pkg/utils"
)

// Global flag names registered on the root command.
const (
	FlagDebug     = "debug"
	FlagJSONLogs  = "json-logs"
	FlagConfigDir = "config-dir"
	FlagRun       = "run"
)

// ErrNoRuns is returned when a command needs a trained run and none is recorded.
var ErrNoRuns = errors.New("no trained runs found; run \"charnn train\" first or pass --run")

// Globals are the persistent flags every subcommand reads.
type Globals struct {
	Debug     bool
	JSONLogs  bool
	ConfigDir string
}

// ReadGlobals reads the persistent flags. Missing flags read as zero values
// so subcommands can run detached from the root command in tests.
func ReadGlobals(cmd *cobra.Command) Globals {
	var g Globals
	g.Debug, _ = cmd.Flags().GetBool(FlagDebug)
	g.JSONLogs, _ = cmd.Flags().GetBool(FlagJSONLogs)
	g.ConfigDir, _ = cmd.Flags().GetString(FlagConfigDir)
	return g
}

// ResolveConfig merges defaults, config.toml, CHARNN_* env, and the given
// registered flags into a Config.
func ResolveConfig(cmd *cobra.Command, flagKeys ...string) (*config.Config, error) {
	v, err := config.InitViper(ReadGlobals(cmd).ConfigDir)
	if err != nil {
		return nil, err
	}

	config.BindRegisteredFlags(v, cmd, config.Registry, flagKeys)
	return config.Resolve(v), nil
}

// NewLogger builds the command logger on the command's stderr.
func NewLogger(cmd *cobra.Command) *slog.Logger {
	g := ReadGlobals(cmd)
	return logger.NewCLI(cmd.ErrOrStderr(), g.Debug, g.JSONLogs)
}

// OpenRunStore opens the configured run store.
func OpenRunStore(cfg *config.Config, log *slog.Logger) (storage.Driver, error) {
	switch cfg.Storage.Provider {
	case config.StorageMemory:
		log.Debug("using in-memory run storage")
		return inmemory.NewDriver(), nil
	case config.StorageSQLite, "":
		path := cfg.SQLitePath()
		driver, err := sqlite.NewDriver(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open run store: %w", err)
		}
		log.Debug("using SQLite run storage", "path", path)
		return driver, nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Storage.Provider)
	}
}

// NewPublisher returns a Kafka publisher when brokers are configured and a
// no-op publisher otherwise.
func NewPublisher(cfg *config.Config, log *slog.Logger) (eventstream.Publisher, error) {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		return nop.NewPublisher(), nil
	}

	p, err := kafka.NewPublisher(kafka.Config{
		Brokers:      brokers,
		Topic:        cfg.EventStream.Topic,
		WriteTimeout: 10 * time.Second,
		Logger:       log,
	})
	if err != nil {
		return nil, fmt.Errorf("creating event publisher: %w", err)
	}

	log.Debug("publishing run events", "brokers", brokers, "topic", cfg.EventStream.Topic)
	return p, nil
}

// EventSource identifies this build in published events.
func EventSource() eventstream.EventSource {
	host, _ := os.Hostname()
	return eventstream.EventSource{
		Service: "charnn",
		Version: utils.Version,
		Host:    host,
	}
}

// NewRand returns the random source for a run. A zero seed is replaced by
// one drawn from the clock; the seed actually used is returned so it can
// be recorded.
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// LoadRun loads the artifacts for runID, or for the latest recorded run
// when runID is empty. An explicit runID is looked up under the output dir
// even if it was never recorded. A recorded run's artifacts must carry the
// categories stored in its record.
func LoadRun(ctx context.Context, cfg *config.Config, store storage.Driver, runID string) (*artifact.Bundle, error) {
	if runID != "" {
		return artifact.NewLayout(cfg.Output.Dir).LoadRun(runID)
	}

	run, err := store.Latest(ctx)
	if err != nil {
		var notFound storage.ErrNotFound
		if errors.As(err, &notFound) {
			return nil, ErrNoRuns
		}
		return nil, err
	}

	bundle, err := artifact.NewLayout(filepath.Dir(run.ArtifactDir)).LoadRun(run.ID)
	if err != nil {
		return nil, err
	}
	if !slices.Equal(bundle.Registry.Names(), run.Categories) {
		return nil, fmt.Errorf("%w: run %s categories differ from its record", artifact.ErrRunMismatch, run.ID)
	}
	return bundle, nil
}
