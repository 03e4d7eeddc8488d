package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag is the single source of truth for a CLI flag.
// Commands reference flags by registry key rather than hard-coding names,
// shorthands, defaults, and descriptions inline. This prevents flag drift
// when the same logical flag appears on multiple commands (e.g., --data
// on both "charnn train" and "charnn evaluate").
type Flag struct {
	// Name is the long flag name (e.g. "iterations").
	Name string

	// Shorthand is the one-letter short flag (e.g. "n"). Empty for no shorthand.
	Shorthand string

	// ViperKey is the dotted config key this flag maps to (e.g. "train.iterations").
	ViperKey string

	// Description is the help text shown in --help output.
	Description string
}

// FlagSet is a mapping of flag names to Flag structs that hold their name,
// shorthand, viper key, etc.
type FlagSet map[string]Flag

// Flag registry keys.
// Use these constants when calling AddStringFlag, AddUintFlag,
// and BindRegisteredFlags to avoid typos or drift from one command to another.
const (
	FlagDataPath         = "data"
	FlagOutputDir        = "output"
	FlagHiddenSize       = "hidden"
	FlagIterations       = "iterations"
	FlagLearningRate     = "learning-rate"
	FlagReportPercent    = "report-percent"
	FlagConfusionSamples = "confusion-samples"
	FlagSeed             = "seed"
	FlagListen           = "listen"
	FlagStorageProvider  = "storage"
	FlagSQLite           = "sqlite"
	FlagBrokers          = "brokers"
	FlagTopic            = "topic"

	// FlagEvaluateSamples shares the confusion sample key but reads
	// better as --samples on "charnn evaluate".
	FlagEvaluateSamples = "samples"
)

// Registry holds every flag the charnn commands register.
var Registry = FlagSet{
	FlagDataPath: {
		Name:        "data",
		ViperKey:    "data.path",
		Description: "Data directory containing names/<Category>.txt files",
	},
	FlagOutputDir: {
		Name:        "output",
		Shorthand:   "o",
		ViperKey:    "output.dir",
		Description: "Results directory for categories and trained runs",
	},
	FlagHiddenSize: {
		Name:        "hidden",
		ViperKey:    "train.hidden_size",
		Description: "Hidden state width",
	},
	FlagIterations: {
		Name:        "iterations",
		Shorthand:   "n",
		ViperKey:    "train.iterations",
		Description: "Number of training iterations",
	},
	FlagLearningRate: {
		Name:        "learning-rate",
		ViperKey:    "train.learning_rate",
		Description: "Gradient descent step size",
	},
	FlagReportPercent: {
		Name:        "report-percent",
		ViperKey:    "train.report_percent",
		Description: "Report progress every this percent of iterations",
	},
	FlagConfusionSamples: {
		Name:        "confusion-samples",
		ViperKey:    "train.confusion_samples",
		Description: "Random samples used for the confusion matrix",
	},
	FlagEvaluateSamples: {
		Name:        "samples",
		ViperKey:    "train.confusion_samples",
		Description: "Random samples used for the confusion matrix",
	},
	FlagSeed: {
		Name:        "seed",
		ViperKey:    "train.seed",
		Description: "Random seed (0 seeds from the clock)",
	},
	FlagListen: {
		Name:        "listen",
		Shorthand:   "l",
		ViperKey:    "serve.listen",
		Description: "Address for the inference server to listen on",
	},
	FlagStorageProvider: {
		Name:        "storage",
		ViperKey:    "storage.provider",
		Description: "Run record storage (sqlite, memory)",
	},
	FlagSQLite: {
		Name:        "sqlite",
		Shorthand:   "s",
		ViperKey:    "storage.sqlite_path",
		Description: "Path to the SQLite run database (default: <output>/runs.db)",
	},
	FlagBrokers: {
		Name:        "brokers",
		ViperKey:    "eventstream.brokers",
		Description: "Comma separated Kafka brokers for run events",
	},
	FlagTopic: {
		Name:        "topic",
		ViperKey:    "eventstream.topic",
		Description: "Kafka topic for run events",
	},
}

// AddStringFlag registers a string flag on cmd from the given FlagSet.
// The flag's name, shorthand, default, and description all come from the
// FlagSet entry so they cannot drift across commands.
func AddStringFlag(cmd *cobra.Command, fs FlagSet, key string, target *string) {
	def, ok := fs[key]
	if !ok {
		return
	}

	defaultVal := defaultString(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().StringVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().StringVar(target, def.Name, defaultVal, def.Description)
	}
}

// AddUintFlag registers a uint flag on cmd from the given FlagSet.
func AddUintFlag(cmd *cobra.Command, fs FlagSet, registryKey string, target *uint) {
	def, ok := fs[registryKey]
	if !ok {
		return
	}

	defaultVal := defaultUint(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().UintVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().UintVar(target, def.Name, defaultVal, def.Description)
	}
}

// AddFloatFlag registers a float64 flag on cmd from the given FlagSet.
func AddFloatFlag(cmd *cobra.Command, fs FlagSet, registryKey string, target *float64) {
	def, ok := fs[registryKey]
	if !ok {
		return
	}

	defaultVal := defaultFloat(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().Float64VarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().Float64Var(target, def.Name, defaultVal, def.Description)
	}
}

// BindRegisteredFlags binds already-registered flags to viper using definitions
// from the given FlagSet. Call this in PreRunE after InitViper to connect flags
// to the viper precedence chain (flag > env > config file > default).
func BindRegisteredFlags(v *viper.Viper, cmd *cobra.Command, fs FlagSet, registryKeys []string) {
	for _, registryKey := range registryKeys {
		def, ok := fs[registryKey]
		if !ok {
			continue
		}

		f := cmd.Flags().Lookup(def.Name)
		if f == nil {
			continue
		}

		_ = v.BindPFlag(def.ViperKey, f)
	}
}

// defaultString returns the default string value for a viper key from NewDefaultConfig.
func defaultString(viperKey string) string {
	v := viper.New()
	setViperDefaults(v)
	return v.GetString(viperKey)
}

// defaultUint returns the default uint value for a viper key from NewDefaultConfig.
func defaultUint(viperKey string) uint {
	v := viper.New()
	setViperDefaults(v)
	return v.GetUint(viperKey)
}

// defaultFloat returns the default float64 value for a viper key from NewDefaultConfig.
func defaultFloat(viperKey string) float64 {
	v := viper.New()
	setViperDefaults(v)
	return v.GetFloat64(viperKey)
}
