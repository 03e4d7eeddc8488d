package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/papercomputeco/charnn/pkg/config"
)

var _ = Describe("Configer config", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("LoadConfig", func() {
		It("returns default config when no config file exists", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(config.NewDefaultConfig()))
		})

		It("loads all config fields", func() {
			data := `version = 0

[data]
path = "corpus"

[output]
dir = "out"

[train]
hidden_size = 64
iterations = 5000
learning_rate = 0.01
report_percent = 10
confusion_samples = 500
seed = 42

[serve]
listen = ":9000"

[storage]
provider = "memory"
sqlite_path = "/tmp/runs.db"

[eventstream]
brokers = "localhost:9092"
topic = "names"
`
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Data.Path).To(Equal("corpus"))
			Expect(cfg.Output.Dir).To(Equal("out"))
			Expect(cfg.Train.HiddenSize).To(Equal(uint(64)))
			Expect(cfg.Train.Iterations).To(Equal(uint(5000)))
			Expect(cfg.Train.LearningRate).To(Equal(0.01))
			Expect(cfg.Train.ReportPercent).To(Equal(10.0))
			Expect(cfg.Train.ConfusionSamples).To(Equal(uint(500)))
			Expect(cfg.Train.Seed).To(Equal(uint(42)))
			Expect(cfg.Serve.Listen).To(Equal(":9000"))
			Expect(cfg.Storage.Provider).To(Equal("memory"))
			Expect(cfg.Storage.SQLitePath).To(Equal("/tmp/runs.db"))
			Expect(cfg.EventStream.Brokers).To(Equal("localhost:9092"))
			Expect(cfg.EventStream.Topic).To(Equal("names"))
		})

		It("fills in defaults for unset fields in a partial config", func() {
			data := `[train]
iterations = 200
`
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())

			defaults := config.NewDefaultConfig()
			Expect(cfg.Train.Iterations).To(Equal(uint(200)))
			Expect(cfg.Train.HiddenSize).To(Equal(defaults.Train.HiddenSize))
			Expect(cfg.Train.LearningRate).To(Equal(defaults.Train.LearningRate))
			Expect(cfg.Data.Path).To(Equal(defaults.Data.Path))
			Expect(cfg.Storage.Provider).To(Equal(defaults.Storage.Provider))
			Expect(cfg.EventStream.Topic).To(Equal(defaults.EventStream.Topic))
		})

		It("returns error for malformed TOML", func() {
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[train\n"), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			_, err = c.LoadConfig()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("parsing config TOML"))
		})

		It("returns error for unsupported config version", func() {
			err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("version = 7\n"), 0o600)
			Expect(err).NotTo(HaveOccurred())

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			_, err = c.LoadConfig()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unsupported config version 7"))
		})
	})

	Describe("SaveConfig", func() {
		It("persists config to disk", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg := config.NewDefaultConfig()
			cfg.Train.Iterations = 321
			Expect(c.SaveConfig(cfg)).To(Succeed())

			loaded, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(cfg))
		})

		It("returns error for nil config", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SaveConfig(nil)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("nil config"))
		})
	})

	Describe("SetConfigValue", func() {
		It("sets a string config key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.SetConfigValue("data.path", "/srv/names")).To(Succeed())

			val, err := c.GetConfigValue("data.path")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal("/srv/names"))
		})

		It("sets a uint config key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.SetConfigValue("train.hidden_size", "256")).To(Succeed())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Train.HiddenSize).To(Equal(uint(256)))
		})

		It("sets a float config key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.SetConfigValue("train.learning_rate", "0.002")).To(Succeed())

			val, err := c.GetConfigValue("train.learning_rate")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal("0.002"))
		})

		It("returns error for unknown key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("proxy.upstream", "x")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown config key"))
		})

		It("returns error for invalid uint value", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("train.iterations", "many")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid value for train.iterations"))
		})

		It("rejects a non-positive learning rate", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("train.learning_rate", "-1")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("must be positive"))
		})

		It("rejects an unknown storage provider", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			err = c.SetConfigValue("storage.provider", "postgres")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("storage.provider"))
		})

		It("preserves existing values when setting a new key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.SetConfigValue("serve.listen", ":7070")).To(Succeed())
			Expect(c.SetConfigValue("train.seed", "9")).To(Succeed())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Serve.Listen).To(Equal(":7070"))
			Expect(cfg.Train.Seed).To(Equal(uint(9)))
		})
	})

	Describe("GetConfigValue", func() {
		It("returns default value when no config file exists", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			val, err := c.GetConfigValue("train.iterations")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(Equal("100000"))
		})

		It("returns empty string for key with no default", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			val, err := c.GetConfigValue("eventstream.brokers")
			Expect(err).NotTo(HaveOccurred())
			Expect(val).To(BeEmpty())
		})
	})

	Describe("ValidConfigKeys", func() {
		It("returns every key in section order", func() {
			keys := config.ValidConfigKeys()
			Expect(keys).To(HaveLen(13))
			Expect(keys[0]).To(Equal("data.path"))
			Expect(keys).To(ContainElements("train.learning_rate", "storage.provider", "eventstream.topic"))
			for _, k := range keys {
				Expect(config.IsValidConfigKey(k)).To(BeTrue())
			}
		})

		It("returns false for unknown keys", func() {
			Expect(config.IsValidConfigKey("hidden_size")).To(BeFalse())
			Expect(config.IsValidConfigKey("")).To(BeFalse())
		})
	})
})

var _ = Describe("Config helpers", func() {
	It("defaults the sqlite path into the output directory", func() {
		cfg := config.NewDefaultConfig()
		cfg.Output.Dir = "/var/charnn"
		Expect(cfg.SQLitePath()).To(Equal("/var/charnn/runs.db"))

		cfg.Storage.SQLitePath = "/tmp/x.db"
		Expect(cfg.SQLitePath()).To(Equal("/tmp/x.db"))
	})

	It("splits the broker list", func() {
		cfg := config.NewDefaultConfig()
		Expect(cfg.Brokers()).To(BeEmpty())

		cfg.EventStream.Brokers = "a:9092, b:9092,,"
		Expect(cfg.Brokers()).To(Equal([]string{"a:9092", "b:9092"}))
	})
})

var _ = Describe("InitViper", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "viper-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("returns viper with defaults when no config file exists", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		cfg := config.Resolve(v)
		Expect(cfg).To(Equal(config.NewDefaultConfig()))
	})

	It("reads config file values over defaults", func() {
		data := `[train]
hidden_size = 32
learning_rate = 0.1
`
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
		Expect(err).NotTo(HaveOccurred())

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		cfg := config.Resolve(v)
		Expect(cfg.Train.HiddenSize).To(Equal(uint(32)))
		Expect(cfg.Train.LearningRate).To(Equal(0.1))
		Expect(cfg.Train.Iterations).To(Equal(config.NewDefaultConfig().Train.Iterations))
	})

	It("env vars take precedence over config file values", func() {
		data := `[serve]
listen = ":5555"
`
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
		Expect(err).NotTo(HaveOccurred())

		os.Setenv("CHARNN_SERVE_LISTEN", ":6666")
		defer os.Unsetenv("CHARNN_SERVE_LISTEN")

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		Expect(config.Resolve(v).Serve.Listen).To(Equal(":6666"))
	})
})

var _ = Describe("BindFlags", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "bindflag-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("binds cobra flags to viper keys via registry", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		cmd := &cobra.Command{Use: "test"}
		var iterations uint
		var rate float64
		config.AddUintFlag(cmd, config.Registry, config.FlagIterations, &iterations)
		config.AddFloatFlag(cmd, config.Registry, config.FlagLearningRate, &rate)

		Expect(cmd.Flags().Set("iterations", "77")).To(Succeed())
		Expect(cmd.Flags().Set("learning-rate", "0.5")).To(Succeed())

		config.BindRegisteredFlags(v, cmd, config.Registry, []string{config.FlagIterations, config.FlagLearningRate})

		cfg := config.Resolve(v)
		Expect(cfg.Train.Iterations).To(Equal(uint(77)))
		Expect(cfg.Train.LearningRate).To(Equal(0.5))
	})

	It("falls through to config when flag not set", func() {
		data := `[data]
path = "/srv/names"
`
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
		Expect(err).NotTo(HaveOccurred())

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		cmd := &cobra.Command{Use: "test"}
		var path string
		config.AddStringFlag(cmd, config.Registry, config.FlagDataPath, &path)

		config.BindRegisteredFlags(v, cmd, config.Registry, []string{config.FlagDataPath})

		Expect(v.GetString("data.path")).To(Equal("/srv/names"))
	})

	It("skips bindings for nonexistent registry keys", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		cmd := &cobra.Command{Use: "test"}
		config.BindRegisteredFlags(v, cmd, config.Registry, []string{"nonexistent"})

		Expect(v.GetString("serve.listen")).To(Equal(config.NewDefaultConfig().Serve.Listen))
	})

	It("pulls name, shorthand, default, and description from the registry", func() {
		cmd := &cobra.Command{Use: "test"}
		var listen string
		config.AddStringFlag(cmd, config.Registry, config.FlagListen, &listen)

		f := cmd.Flags().Lookup("listen")
		Expect(f).NotTo(BeNil())
		Expect(f.Shorthand).To(Equal("l"))
		Expect(f.DefValue).To(Equal(":8080"))
		Expect(f.Usage).To(Equal(config.Registry[config.FlagListen].Description))
	})

	It("maps --samples onto the confusion sample key", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		cmd := &cobra.Command{Use: "test"}
		var samples uint
		config.AddUintFlag(cmd, config.Registry, config.FlagEvaluateSamples, &samples)
		Expect(cmd.Flags().Set("samples", "12")).To(Succeed())

		config.BindRegisteredFlags(v, cmd, config.Registry, []string{config.FlagEvaluateSamples})
		Expect(config.Resolve(v).Train.ConfusionSamples).To(Equal(uint(12)))
	})
})
