package configcmder_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	configcmder "github.com/papercomputeco/charnn/cmd/charnn/config"
	"github.com/papercomputeco/charnn/pkg/config"
)

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := configcmder.NewConfigCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var _ = Describe("NewConfigCmd", func() {
	It("creates a command with the correct use string", func() {
		cmd := configcmder.NewConfigCmd()
		Expect(cmd.Use).To(Equal("config"))
	})

	It("has set, get, and list subcommands", func() {
		cmd := configcmder.NewConfigCmd()
		cmds := cmd.Commands()
		subcommands := make([]string, 0, len(cmds))
		for _, sub := range cmds {
			subcommands = append(subcommands, sub.Name())
		}
		Expect(subcommands).To(ContainElements("set", "get", "list"))
	})
})

var _ = Describe("Config command execution", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "charnn-config-test-*")
		Expect(err).NotTo(HaveOccurred())
		tmpDir, err = filepath.EvalSymlinks(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		origDir, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(tmpDir)).To(Succeed())

		origHome := os.Getenv("HOME")
		Expect(os.Setenv("HOME", tmpDir)).To(Succeed())

		DeferCleanup(func() {
			Expect(os.Chdir(origDir)).To(Succeed())
			os.Setenv("HOME", origHome)
			os.RemoveAll(tmpDir)
		})
	})

	Context("with a local .charnn directory", func() {
		BeforeEach(func() {
			Expect(os.MkdirAll(filepath.Join(tmpDir, ".charnn"), 0o755)).To(Succeed())
		})

		Describe("set subcommand", func() {
			It("sets a config value successfully", func() {
				out, err := execute("set", "train.hidden_size", "64")
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(ContainSubstring("train.hidden_size"))

				cfger, err := config.NewConfiger(filepath.Join(tmpDir, ".charnn"))
				Expect(err).NotTo(HaveOccurred())
				cfg, err := cfger.LoadConfig()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Train.HiddenSize).To(Equal(uint(64)))
			})

			It("rejects unknown keys", func() {
				_, err := execute("set", "invalid_key", "value")
				Expect(err).To(MatchError(ContainSubstring("unknown config key")))
			})

			It("requires exactly two arguments", func() {
				_, err := execute("set", "train.seed")
				Expect(err).To(HaveOccurred())
			})

			It("rejects invalid uint values", func() {
				_, err := execute("set", "train.iterations", "not-a-number")
				Expect(err).To(HaveOccurred())
			})
		})

		Describe("get subcommand", func() {
			It("gets a previously set value", func() {
				_, err := execute("set", "serve.listen", ":9999")
				Expect(err).NotTo(HaveOccurred())

				out, err := execute("get", "serve.listen")
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(ContainSubstring(":9999"))
			})

			It("reports unset keys", func() {
				out, err := execute("get", "eventstream.brokers")
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(ContainSubstring("<not set>"))
			})

			It("rejects unknown keys", func() {
				_, err := execute("get", "invalid_key")
				Expect(err).To(HaveOccurred())
			})

			It("requires exactly one argument", func() {
				_, err := execute("get")
				Expect(err).To(HaveOccurred())
			})
		})

		Describe("list subcommand", func() {
			It("lists every key with defaults filled in", func() {
				out, err := execute("list")
				Expect(err).NotTo(HaveOccurred())
				for _, key := range config.ValidConfigKeys() {
					Expect(out).To(ContainSubstring(key))
				}
				Expect(out).To(ContainSubstring("100000"))
			})

			It("rejects any arguments", func() {
				_, err := execute("list", "extra")
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Context("without a .charnn directory", func() {
		It("creates a local one on set", func() {
			_, err := execute("set", "data.path", "corpus")
			Expect(err).NotTo(HaveOccurred())

			_, err = os.Stat(filepath.Join(tmpDir, ".charnn", "config.toml"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("lists defaults", func() {
			out, err := execute("list")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("No config file found"))
		})
	})
})
