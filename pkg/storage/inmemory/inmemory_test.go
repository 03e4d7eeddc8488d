package inmemory_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/charnn/pkg/storage"
	"github.com/papercomputeco/charnn/pkg/storage/inmemory"
)

var _ = Describe("Driver", func() {
	var (
		driver *inmemory.Driver
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
	})

	It("stores and retrieves runs", func() {
		run := storage.NewRun("data", "results/x", []string{"English"})

		inserted, err := driver.Put(ctx, run)
		Expect(err).NotTo(HaveOccurred())
		Expect(inserted).To(BeTrue())
		Expect(driver.Count()).To(Equal(1))

		got, err := driver.Get(ctx, run.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(run))
	})

	It("does not alias the caller's run", func() {
		run := storage.NewRun("data", "results/x", []string{"English"})
		_, err := driver.Put(ctx, run)
		Expect(err).NotTo(HaveOccurred())

		run.Categories[0] = "Changed"
		got, err := driver.Get(ctx, run.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Categories).To(Equal([]string{"English"}))
	})

	It("deduplicates by ID", func() {
		run := storage.NewRun("data", "results/x", nil)
		_, err := driver.Put(ctx, run)
		Expect(err).NotTo(HaveOccurred())

		inserted, err := driver.Put(ctx, run)
		Expect(err).NotTo(HaveOccurred())
		Expect(inserted).To(BeFalse())
	})

	It("returns the newest run as latest", func() {
		older := storage.NewRun("data", "a", nil)
		older.CreatedAt = time.Unix(10, 0)
		newer := storage.NewRun("data", "b", nil)
		newer.CreatedAt = time.Unix(20, 0)

		_, err := driver.Put(ctx, newer)
		Expect(err).NotTo(HaveOccurred())
		_, err = driver.Put(ctx, older)
		Expect(err).NotTo(HaveOccurred())

		latest, err := driver.Latest(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(latest.ID).To(Equal(newer.ID))

		runs, err := driver.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(HaveLen(2))
		Expect(runs[1].ID).To(Equal(older.ID))
	})

	It("reports missing runs", func() {
		_, err := driver.Get(ctx, "missing")
		Expect(err).To(MatchError(storage.ErrNotFound{ID: "missing"}))

		_, err = driver.Latest(ctx)
		Expect(err).To(MatchError(storage.ErrNotFound{}))
	})
})
