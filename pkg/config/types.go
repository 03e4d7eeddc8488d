package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent charnn configuration stored as config.toml
// in the .charnn/ directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version     int               `toml:"version"`
	Data        DataConfig        `toml:"data"`
	Output      OutputConfig      `toml:"output"`
	Train       TrainConfig       `toml:"train"`
	Serve       ServeConfig       `toml:"serve"`
	Storage     StorageConfig     `toml:"storage"`
	EventStream EventStreamConfig `toml:"eventstream"`
}

// DataConfig locates the training data. Category files live under
// <path>/names/<Category>.txt.
type DataConfig struct {
	Path string `toml:"path,omitempty"`
}

// OutputConfig locates the results directory holding categories.json and one
// subdirectory per training run.
type OutputConfig struct {
	Dir string `toml:"dir,omitempty"`
}

// TrainConfig holds training hyperparameters.
type TrainConfig struct {
	HiddenSize       uint    `toml:"hidden_size,omitempty"`
	Iterations       uint    `toml:"iterations,omitempty"`
	LearningRate     float64 `toml:"learning_rate,omitempty"`
	ReportPercent    float64 `toml:"report_percent,omitempty"`
	ConfusionSamples uint    `toml:"confusion_samples,omitempty"`

	// Seed makes sampling and initialization reproducible. Zero seeds from the clock.
	Seed uint `toml:"seed,omitempty"`
}

// ServeConfig holds inference server settings.
type ServeConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// StorageConfig selects where run records are kept.
type StorageConfig struct {
	// Provider is "sqlite" or "memory".
	Provider string `toml:"provider,omitempty"`

	// SQLitePath defaults to runs.db inside the output directory.
	SQLitePath string `toml:"sqlite_path,omitempty"`
}

// EventStreamConfig configures run-completed event publishing.
// Publishing is disabled when Brokers is empty.
type EventStreamConfig struct {
	Brokers string `toml:"brokers,omitempty"`
	Topic   string `toml:"topic,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

func uintKey(name string, field func(c *Config) *uint) configKeyInfo {
	return configKeyInfo{
		get: func(c *Config) string {
			if *field(c) == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(*field(c)), 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", name, err)
			}
			*field(c) = uint(n)
			return nil
		},
	}
}

func floatKey(name string, field func(c *Config) *float64) configKeyInfo {
	return configKeyInfo{
		get: func(c *Config) string {
			if *field(c) == 0 {
				return ""
			}
			return strconv.FormatFloat(*field(c), 'g', -1, 64)
		},
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", name, err)
			}
			if f <= 0 {
				return fmt.Errorf("invalid value for %s: must be positive", name)
			}
			*field(c) = f
			return nil
		},
	}
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"data.path": {
		get: func(c *Config) string { return c.Data.Path },
		set: func(c *Config, v string) error { c.Data.Path = v; return nil },
	},
	"output.dir": {
		get: func(c *Config) string { return c.Output.Dir },
		set: func(c *Config, v string) error { c.Output.Dir = v; return nil },
	},
	"train.hidden_size": uintKey("train.hidden_size", func(c *Config) *uint { return &c.Train.HiddenSize }),
	"train.iterations":  uintKey("train.iterations", func(c *Config) *uint { return &c.Train.Iterations }),
	"train.learning_rate": floatKey("train.learning_rate", func(c *Config) *float64 {
		return &c.Train.LearningRate
	}),
	"train.report_percent": floatKey("train.report_percent", func(c *Config) *float64 {
		return &c.Train.ReportPercent
	}),
	"train.confusion_samples": uintKey("train.confusion_samples", func(c *Config) *uint {
		return &c.Train.ConfusionSamples
	}),
	"train.seed": uintKey("train.seed", func(c *Config) *uint { return &c.Train.Seed }),
	"serve.listen": {
		get: func(c *Config) string { return c.Serve.Listen },
		set: func(c *Config, v string) error { c.Serve.Listen = v; return nil },
	},
	"storage.provider": {
		get: func(c *Config) string { return c.Storage.Provider },
		set: func(c *Config, v string) error {
			switch v {
			case StorageSQLite, StorageMemory:
				c.Storage.Provider = v
				return nil
			default:
				return fmt.Errorf("invalid value for storage.provider: %q (available: %s, %s)", v, StorageSQLite, StorageMemory)
			}
		},
	},
	"storage.sqlite_path": {
		get: func(c *Config) string { return c.Storage.SQLitePath },
		set: func(c *Config, v string) error { c.Storage.SQLitePath = v; return nil },
	},
	"eventstream.brokers": {
		get: func(c *Config) string { return c.EventStream.Brokers },
		set: func(c *Config, v string) error { c.EventStream.Brokers = v; return nil },
	},
	"eventstream.topic": {
		get: func(c *Config) string { return c.EventStream.Topic },
		set: func(c *Config, v string) error { c.EventStream.Topic = v; return nil },
	},
}
