package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/papercomputeco/charnn/pkg/dotdir"
)

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads the config.toml file
// (if found via dotdir resolution), and binds environment variables
// with the CHARNN_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound via BindRegisteredFlags)
//  2. Environment variables (CHARNN_TRAIN_ITERATIONS, CHARNN_SERVE_LISTEN, etc.)
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	// 1. Register all defaults from NewDefaultConfig().
	setViperDefaults(v)

	// 2. Config file discovery via dotdir resolution.
	v.SetConfigName("config")
	v.SetConfigType("toml")

	ddm := dotdir.NewManager()
	target, err := ddm.Target(configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}

	if target != "" {
		v.AddConfigPath(target)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// 3. Environment variables: CHARNN_DATA_PATH, CHARNN_STORAGE_SQLITE_PATH, etc.
	v.SetEnvPrefix("CHARNN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)

	v.SetDefault("data.path", d.Data.Path)
	v.SetDefault("output.dir", d.Output.Dir)

	// Training
	v.SetDefault("train.hidden_size", d.Train.HiddenSize)
	v.SetDefault("train.iterations", d.Train.Iterations)
	v.SetDefault("train.learning_rate", d.Train.LearningRate)
	v.SetDefault("train.report_percent", d.Train.ReportPercent)
	v.SetDefault("train.confusion_samples", d.Train.ConfusionSamples)
	v.SetDefault("train.seed", d.Train.Seed)

	v.SetDefault("serve.listen", d.Serve.Listen)

	// Storage
	v.SetDefault("storage.provider", d.Storage.Provider)
	v.SetDefault("storage.sqlite_path", d.Storage.SQLitePath)

	// Event stream
	v.SetDefault("eventstream.brokers", d.EventStream.Brokers)
	v.SetDefault("eventstream.topic", d.EventStream.Topic)
}

// Resolve reads the fully merged configuration out of v.
// Flags must already be bound for them to take effect.
func Resolve(v *viper.Viper) *Config {
	return &Config{
		Version: v.GetInt("version"),
		Data: DataConfig{
			Path: v.GetString("data.path"),
		},
		Output: OutputConfig{
			Dir: v.GetString("output.dir"),
		},
		Train: TrainConfig{
			HiddenSize:       v.GetUint("train.hidden_size"),
			Iterations:       v.GetUint("train.iterations"),
			LearningRate:     v.GetFloat64("train.learning_rate"),
			ReportPercent:    v.GetFloat64("train.report_percent"),
			ConfusionSamples: v.GetUint("train.confusion_samples"),
			Seed:             v.GetUint("train.seed"),
		},
		Serve: ServeConfig{
			Listen: v.GetString("serve.listen"),
		},
		Storage: StorageConfig{
			Provider:   v.GetString("storage.provider"),
			SQLitePath: v.GetString("storage.sqlite_path"),
		},
		EventStream: EventStreamConfig{
			Brokers: v.GetString("eventstream.brokers"),
			Topic:   v.GetString("eventstream.topic"),
		},
	}
}
