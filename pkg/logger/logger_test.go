package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/charnn/pkg/logger"
)

func decodeLines(buf *bytes.Buffer) []map[string]any {
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		Expect(json.Unmarshal([]byte(line), &rec)).To(Succeed())
		records = append(records, rec)
	}
	return records
}

var _ = Describe("New", func() {
	It("writes text at Info level by default", func() {
		var buf bytes.Buffer
		l := logger.New(logger.WithWriter(&buf))
		l.Debug("hidden")
		l.Info("shown", "iteration", 5)

		Expect(buf.String()).NotTo(ContainSubstring("hidden"))
		Expect(buf.String()).To(ContainSubstring("msg=shown"))
		Expect(buf.String()).To(ContainSubstring("iteration=5"))
	})

	It("writes debug records when enabled", func() {
		var buf bytes.Buffer
		l := logger.New(logger.WithWriter(&buf), logger.WithDebug(true))
		l.Debug("details")

		Expect(buf.String()).To(ContainSubstring("details"))
	})

	It("writes one JSON object per record", func() {
		var buf bytes.Buffer
		l := logger.New(logger.WithWriter(&buf), logger.WithJSON(true))
		l.Info("training progress", "loss", 1.5)
		l.Info("training complete")

		records := decodeLines(&buf)
		Expect(records).To(HaveLen(2))
		Expect(records[0]["msg"]).To(Equal("training progress"))
		Expect(records[0]["loss"]).To(BeNumerically("==", 1.5))
	})

	It("renders pretty output", func() {
		var buf bytes.Buffer
		l := logger.New(logger.WithWriter(&buf), logger.WithPretty(true))
		l.Info("pretty output")

		Expect(buf.String()).To(ContainSubstring("pretty output"))
	})

	It("prefers JSON over pretty output", func() {
		var buf bytes.Buffer
		l := logger.New(logger.WithWriter(&buf), logger.WithPretty(true), logger.WithJSON(true))
		l.Info("both")

		Expect(buf.String()).To(HavePrefix("{"))
	})
})

var _ = Describe("NewCLI", func() {
	It("uses plain text for non-terminal writers", func() {
		var buf bytes.Buffer
		logger.NewCLI(&buf, false, false).Info("loading data")

		Expect(buf.String()).To(ContainSubstring("msg=\"loading data\""))
	})

	It("switches to JSON on request", func() {
		var buf bytes.Buffer
		logger.NewCLI(&buf, true, true).Debug("resolved config", "iterations", 100)

		records := decodeLines(&buf)
		Expect(records).To(HaveLen(1))
		Expect(records[0]["iterations"]).To(BeNumerically("==", 100))
	})
})

var _ = Describe("Nop", func() {
	It("is disabled at every level", func() {
		l := logger.Nop()
		for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelError} {
			Expect(l.Handler().Enabled(context.Background(), level)).To(BeFalse())
		}
		Expect(func() {
			l.With("run_id", "r").WithGroup("g").Error("ignored")
		}).NotTo(Panic())
	})
})

var _ = Describe("Multi", func() {
	It("writes to every logger", func() {
		var terminal, file bytes.Buffer
		l := logger.Multi(
			logger.New(logger.WithWriter(&terminal)),
			logger.New(logger.WithWriter(&file), logger.WithJSON(true)),
		)
		l.Info("training", "categories", 18)

		Expect(terminal.String()).To(ContainSubstring("categories=18"))
		Expect(decodeLines(&file)[0]["categories"]).To(BeNumerically("==", 18))
	})

	It("respects each logger's level", func() {
		var terminal, file bytes.Buffer
		l := logger.Multi(
			logger.New(logger.WithWriter(&terminal)),
			logger.New(logger.WithWriter(&file), logger.WithJSON(true), logger.WithDebug(true)),
		)
		l.Debug("gradient norms")

		Expect(terminal.String()).To(BeEmpty())
		Expect(file.String()).To(ContainSubstring("gradient norms"))
	})

	It("carries attributes and groups to every logger", func() {
		var a, b bytes.Buffer
		l := logger.Multi(
			logger.New(logger.WithWriter(&a), logger.WithJSON(true)),
			logger.New(logger.WithWriter(&b), logger.WithJSON(true)),
		).With("run_id", "abc").WithGroup("train")
		l.Info("training progress", "iteration", 10)

		for _, buf := range []*bytes.Buffer{&a, &b} {
			rec := decodeLines(buf)[0]
			Expect(rec["run_id"]).To(Equal("abc"))
			Expect(rec["train"]).To(HaveKeyWithValue("iteration", BeNumerically("==", 10)))
		}
	})

	It("skips nil loggers", func() {
		var buf bytes.Buffer
		l := logger.Multi(nil, logger.New(logger.WithWriter(&buf)))
		l.Info("still logged")

		Expect(buf.String()).To(ContainSubstring("still logged"))
	})
})
