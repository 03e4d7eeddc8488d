package entdriver_test

import (
	"context"
	"time"

	_ "github.com/mattn/go-sqlite3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/charnn/pkg/storage"
	entdriver "github.com/papercomputeco/charnn/pkg/storage/ent/driver"
	"github.com/papercomputeco/charnn/pkg/storage/ent/enttest"
	"github.com/papercomputeco/charnn/pkg/storage/ent/run"
)

var _ = Describe("RunDriver", func() {
	var (
		ctx    context.Context
		driver *entdriver.RunDriver
	)

	BeforeEach(func() {
		ctx = context.Background()
		client := enttest.Open(GinkgoT(), "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
		driver = entdriver.New(client)
	})

	AfterEach(func() {
		Expect(driver.Close()).To(Succeed())
	})

	newRun := func(id string, createdAt time.Time) *storage.Run {
		return &storage.Run{
			ID:           id,
			CreatedAt:    createdAt,
			DataPath:     "data/names",
			ArtifactDir:  "runs/" + id,
			HiddenSize:   128,
			Iterations:   1000,
			LearningRate: 0.005,
			Seed:         1 << 63,
			Loss:         1.5,
			Accuracy:     0.6,
			Categories:   []string{"English", "French"},
		}
	}

	It("keeps the high bit of the seed", func() {
		r := newRun("a", time.Unix(1700000000, 0).UTC())
		Expect(driver.Put(ctx, r)).To(BeTrue())

		got, err := driver.Get(ctx, "a")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Seed).To(Equal(uint64(1 << 63)))
	})

	It("defaults created_at when the run leaves it unset", func() {
		before := time.Now().Add(-time.Second)
		Expect(driver.Put(ctx, newRun("a", time.Time{}))).To(BeTrue())

		got, err := driver.Get(ctx, "a")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.CreatedAt).To(BeTemporally(">", before))
	})

	It("rejects an empty id", func() {
		_, err := driver.Put(ctx, newRun("", time.Now()))
		Expect(err).To(HaveOccurred())
	})

	It("breaks created_at ties by id", func() {
		at := time.Unix(1700000000, 0).UTC()
		for _, id := range []string{"c", "a", "b"} {
			Expect(driver.Put(ctx, newRun(id, at))).To(BeTrue())
		}

		runs, err := driver.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		ids := make([]string, 0, len(runs))
		for _, r := range runs {
			ids = append(ids, r.ID)
		}
		Expect(ids).To(Equal([]string{"a", "b", "c"}))
	})

	It("rejects updates and deletes of stored runs", func() {
		Expect(driver.Put(ctx, newRun("a", time.Now()))).To(BeTrue())

		n, err := driver.Client.Run.Update().Where(run.ID("a")).Save(ctx)
		Expect(err).To(MatchError(ContainSubstring("operation is not allowed")))
		Expect(n).To(BeZero())

		err = driver.Client.Run.DeleteOneID("a").Exec(ctx)
		Expect(err).To(MatchError(ContainSubstring("operation is not allowed")))

		_, err = driver.Get(ctx, "a")
		Expect(err).NotTo(HaveOccurred())
	})
})
