package servecmder

import (
	"context"
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/charnn/cmd/charnn/cmdutil"
	"github.com/papercomputeco/charnn/pkg/alphabet"
	"github.com/papercomputeco/charnn/pkg/artifact"
	"github.com/papercomputeco/charnn/pkg/category"
	"github.com/papercomputeco/charnn/pkg/config"
	"github.com/papercomputeco/charnn/pkg/logger"
	"github.com/papercomputeco/charnn/pkg/rnn"
	"github.com/papercomputeco/charnn/pkg/storage"
	"github.com/papercomputeco/charnn/pkg/storage/sqlite"
)

var _ = Describe("ServeCommander", func() {
	var (
		ctx    context.Context
		cmder  *ServeCommander
		layout *artifact.Layout
	)

	BeforeEach(func() {
		ctx = context.Background()

		cfg := config.NewDefaultConfig()
		cfg.Output.Dir = GinkgoT().TempDir()
		cfg.Serve.Listen = "127.0.0.1:0"
		layout = artifact.NewLayout(cfg.Output.Dir)

		cmder = &ServeCommander{cfg: cfg, logger: logger.Nop()}
	})

	recordRun := func(id string, registry *category.Registry) {
		a := alphabet.NewDefault()
		model, err := rnn.New(a.Size(), 8, registry.Len(), rand.New(rand.NewPCG(2, 2)))
		Expect(err).NotTo(HaveOccurred())
		Expect(layout.SaveRun(id, model, registry, a)).To(Succeed())

		store, err := sqlite.NewDriver(cmder.cfg.SQLitePath())
		Expect(err).NotTo(HaveOccurred())
		defer store.Close()

		run := storage.NewRun("data", layout.RunDir(id), registry.Names())
		run.ID = id
		_, err = store.Put(ctx, run)
		Expect(err).NotTo(HaveOccurred())
	}

	It("refuses to start without a trained run", func() {
		_, err := cmder.newServer(ctx)
		Expect(err).To(MatchError(cmdutil.ErrNoRuns))
	})

	It("builds a server for the latest run", func() {
		registry, err := category.New([]string{"English", "French"})
		Expect(err).NotTo(HaveOccurred())
		recordRun("run-1", registry)

		server, err := cmder.newServer(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(server).NotTo(BeNil())
	})

	It("reports an unknown run id", func() {
		cmder.runID = "missing"

		_, err := cmder.newServer(ctx)
		Expect(err).To(MatchError(ContainSubstring("missing")))
	})
})
