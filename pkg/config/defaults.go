package config

const (
	// StorageSQLite keeps run records in a SQLite database.
	StorageSQLite = "sqlite"

	// StorageMemory keeps run records for the lifetime of the process only.
	StorageMemory = "memory"
)

const (
	defaultDataPath  = "data"
	defaultOutputDir = "results"

	defaultHiddenSize       = 128
	defaultIterations       = 100000
	defaultLearningRate     = 0.005
	defaultReportPercent    = 5
	defaultConfusionSamples = 10000

	defaultServeListen = ":8080"

	defaultStorageProvider = StorageSQLite

	defaultSQLiteName = "runs.db"

	defaultEventTopic = "charnn.runs"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Data: DataConfig{
			Path: defaultDataPath,
		},
		Output: OutputConfig{
			Dir: defaultOutputDir,
		},
		Train: TrainConfig{
			HiddenSize:       defaultHiddenSize,
			Iterations:       defaultIterations,
			LearningRate:     defaultLearningRate,
			ReportPercent:    defaultReportPercent,
			ConfusionSamples: defaultConfusionSamples,
		},
		Serve: ServeConfig{
			Listen: defaultServeListen,
		},
		Storage: StorageConfig{
			Provider: defaultStorageProvider,
		},
		EventStream: EventStreamConfig{
			Topic: defaultEventTopic,
		},
	}
}
