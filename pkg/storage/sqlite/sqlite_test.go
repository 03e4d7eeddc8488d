package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/charnn/pkg/storage"
	"github.com/papercomputeco/charnn/pkg/storage/sqlite"
)

func testRun(id string, at time.Time) *storage.Run {
	return &storage.Run{
		ID:           id,
		CreatedAt:    at,
		DataPath:     "data",
		ArtifactDir:  filepath.Join("results", id),
		HiddenSize:   128,
		Iterations:   1000,
		LearningRate: 0.005,
		Seed:         42,
		Loss:         1.25,
		Accuracy:     0.6,
		Categories:   []string{"English", "Italian"},
	}
}

var _ = Describe("Driver", func() {
	var (
		driver *sqlite.Driver
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		driver, err = sqlite.NewDriver(":memory:")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if driver != nil {
			driver.Close()
		}
	})

	Describe("NewDriver", func() {
		It("creates a driver with file database", func() {
			dbPath := filepath.Join(GinkgoT().TempDir(), "nested", "runs.db")

			s, err := sqlite.NewDriver(dbPath)
			Expect(err).NotTo(HaveOccurred())
			defer s.Close()

			_, err = os.Stat(dbPath)
			Expect(err).NotTo(HaveOccurred())
		})

		It("persists runs across reopen", func() {
			dbPath := filepath.Join(GinkgoT().TempDir(), "runs.db")

			s, err := sqlite.NewDriver(dbPath)
			Expect(err).NotTo(HaveOccurred())
			_, err = s.Put(ctx, testRun("a", time.Unix(100, 0).UTC()))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Close()).To(Succeed())

			s, err = sqlite.NewDriver(dbPath)
			Expect(err).NotTo(HaveOccurred())
			defer s.Close()

			run, err := s.Get(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(run.ID).To(Equal("a"))
		})
	})

	Describe("Put and Get", func() {
		It("round-trips every field", func() {
			want := testRun("run-1", time.Unix(1700000000, 123).UTC())

			inserted, err := driver.Put(ctx, want)
			Expect(err).NotTo(HaveOccurred())
			Expect(inserted).To(BeTrue())

			got, err := driver.Get(ctx, "run-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		})

		It("is a no-op for an existing ID", func() {
			_, err := driver.Put(ctx, testRun("run-1", time.Unix(1, 0).UTC()))
			Expect(err).NotTo(HaveOccurred())

			dup := testRun("run-1", time.Unix(2, 0).UTC())
			dup.Loss = 9
			inserted, err := driver.Put(ctx, dup)
			Expect(err).NotTo(HaveOccurred())
			Expect(inserted).To(BeFalse())

			got, err := driver.Get(ctx, "run-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Loss).To(Equal(1.25))
		})

		It("rejects a nil run", func() {
			_, err := driver.Put(ctx, nil)
			Expect(err).To(MatchError(storage.ErrNilRun))
		})

		It("returns ErrNotFound for a missing ID", func() {
			_, err := driver.Get(ctx, "nope")
			Expect(err).To(MatchError(storage.ErrNotFound{ID: "nope"}))
		})
	})

	Describe("List and Latest", func() {
		It("orders runs newest first", func() {
			for i, id := range []string{"old", "new", "mid"} {
				at := time.Unix(int64([]int{1, 3, 2}[i]), 0).UTC()
				_, err := driver.Put(ctx, testRun(id, at))
				Expect(err).NotTo(HaveOccurred())
			}

			runs, err := driver.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(HaveLen(3))
			Expect([]string{runs[0].ID, runs[1].ID, runs[2].ID}).To(Equal([]string{"new", "mid", "old"}))

			latest, err := driver.Latest(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.ID).To(Equal("new"))
		})

		It("reports an empty store", func() {
			runs, err := driver.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(BeEmpty())

			_, err = driver.Latest(ctx)
			Expect(err).To(MatchError(storage.ErrNotFound{}))
		})
	})
})
