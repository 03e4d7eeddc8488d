package charnncmder_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	charnncmder "github.com/papercomputeco/charnn/cmd/charnn"
	"github.com/papercomputeco/charnn/pkg/category"
	testutils "github.com/papercomputeco/charnn/pkg/utils/testutils"
)

var _ = Describe("NewCharnnCmd", func() {
	It("registers every subcommand", func() {
		cmd := charnncmder.NewCharnnCmd()
		names := make([]string, 0, len(cmd.Commands()))
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		Expect(names).To(ContainElements("train", "predict", "evaluate", "serve", "runs", "config", "version"))
	})
})

var _ = Describe("train, predict, evaluate, runs", Ordered, func() {
	var (
		root      string
		dataDir   string
		outputDir string
		configDir string
	)

	execute := func(args ...string) (string, error) {
		var out bytes.Buffer
		cmd := charnncmder.NewCharnnCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(append(args, "--config-dir", configDir))
		err := cmd.Execute()
		return out.String(), err
	}

	BeforeAll(func() {
		root = GinkgoT().TempDir()
		outputDir = filepath.Join(root, "results")
		configDir = filepath.Join(root, ".charnn")

		var err error
		dataDir, err = testutils.WriteNames(filepath.Join(root, "data"), testutils.Separable())
		Expect(err).NotTo(HaveOccurred())
	})

	It("reports a missing run before anything is trained", func() {
		_, err := execute("predict", "abc", "--output", outputDir)
		Expect(err).To(MatchError(ContainSubstring("no trained runs")))
	})

	It("trains and records a run", func() {
		out, err := execute("train",
			"--data", dataDir,
			"--output", outputDir,
			"--hidden", "16",
			"--iterations", "300",
			"--confusion-samples", "50",
			"--seed", "11",
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("accuracy:"))
		Expect(out).To(ContainSubstring("Abc"))
		Expect(out).To(ContainSubstring("Xyz"))

		registry, err := category.Load(filepath.Join(outputDir, "categories.json"))
		Expect(err).NotTo(HaveOccurred())
		Expect(registry.Names()).To(Equal([]string{"Abc", "Xyz"}))

		_, err = os.Stat(filepath.Join(outputDir, "runs.db"))
		Expect(err).NotTo(HaveOccurred())
	})

	It("writes a JSON training log next to the model", func() {
		logs, err := filepath.Glob(filepath.Join(outputDir, "*", "train.log"))
		Expect(err).NotTo(HaveOccurred())
		Expect(logs).To(HaveLen(1))

		data, err := os.ReadFile(logs[0])
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"msg":"training progress"`))
		Expect(string(data)).To(ContainSubstring(`"msg":"training complete"`))
	})

	It("lists the run", func() {
		out, err := execute("runs", "--output", outputDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("300"))
	})

	It("predicts with the latest run", func() {
		out, err := execute("predict", "Zyzzy", "--output", outputDir, "-k", "5")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Abc"))
		Expect(out).To(ContainSubstring("Xyz"))
	})

	It("logs the alphabet positions the model sees in debug mode", func() {
		out, err := execute("predict", "Ab-c", "--output", outputDir, "--debug", "--json-logs")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring(`"msg":"encoded input"`))
		Expect(out).To(ContainSubstring(`"normalized":"Abc"`))
		Expect(out).To(ContainSubstring(`"indices":[26,1,2]`))
	})

	It("rejects a line with no known characters", func() {
		_, err := execute("predict", "123", "--output", outputDir)
		Expect(err).To(HaveOccurred())
	})

	It("predicts with an explicit run id", func() {
		dirs, err := filepath.Glob(filepath.Join(outputDir, "*", "model.json"))
		Expect(err).NotTo(HaveOccurred())
		Expect(dirs).To(HaveLen(1))
		runID := filepath.Base(filepath.Dir(dirs[0]))

		_, err = execute("predict", "abc", "--output", outputDir, "--run", runID)
		Expect(err).NotTo(HaveOccurred())

		_, err = execute("predict", "abc", "--output", outputDir, "--run", "does-not-exist")
		Expect(err).To(MatchError(ContainSubstring("does-not-exist")))
	})

	It("evaluates the latest run", func() {
		out, err := execute("evaluate", "--data", dataDir, "--output", outputDir, "--samples", "40", "--seed", "3")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("accuracy:"))
	})

	It("refuses to evaluate against different categories", func() {
		otherData, err := testutils.WriteNames(filepath.Join(root, "other"), map[string][]string{
			"Abc": {"abc"},
			"Def": {"def"},
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = execute("evaluate", "--data", otherData, "--output", outputDir, "--samples", "10")
		Expect(err).To(MatchError(ContainSubstring("Def")))
	})
})
