package dotdir_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/charnn/pkg/dotdir"
)

var _ = Describe("Manager", func() {
	var (
		work string
		home string
		m    *dotdir.Manager
	)

	// mkdirs creates each dir, failing the test on error.
	mkdirs := func(dirs ...string) {
		for _, d := range dirs {
			Expect(os.MkdirAll(d, 0o755)).To(Succeed())
		}
	}

	BeforeEach(func() {
		// EvalSymlinks keeps results comparable to filepath.Abs on macOS.
		root, err := filepath.EvalSymlinks(GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())

		work = filepath.Join(root, "work")
		home = filepath.Join(root, "home")
		mkdirs(work, home)

		orig, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(work)).To(Succeed())
		DeferCleanup(os.Chdir, orig)
		GinkgoT().Setenv("HOME", home)

		m = dotdir.NewManager()
	})

	Describe("Target", func() {
		It("creates a missing override dir", func() {
			override := filepath.Join(work, "custom", "conf")

			got, err := m.Target(override)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(override))
			Expect(override).To(BeADirectory())
		})

		It("makes a relative override absolute", func() {
			got, err := m.Target("conf")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(filepath.Join(work, "conf")))
		})

		It("prefers the override over local and home dirs", func() {
			mkdirs(filepath.Join(work, ".charnn"), filepath.Join(home, ".charnn"))
			override := filepath.Join(work, "override")

			got, err := m.Target(override)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(override))
		})

		It("prefers ./.charnn over ~/.charnn", func() {
			mkdirs(filepath.Join(work, ".charnn"), filepath.Join(home, ".charnn"))

			got, err := m.Target("")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(filepath.Join(work, ".charnn")))
		})

		It("falls back to ~/.charnn", func() {
			mkdirs(filepath.Join(home, ".charnn"))

			got, err := m.Target("")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(filepath.Join(home, ".charnn")))
		})

		It("ignores a .charnn file that is not a directory", func() {
			Expect(os.WriteFile(filepath.Join(work, ".charnn"), nil, 0o600)).To(Succeed())

			got, err := m.Target("")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty())
		})

		It("returns an empty target when nothing exists", func() {
			got, err := m.Target("")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty())
		})
	})

	Describe("InitLocal", func() {
		It("creates ./.charnn and makes it the target", func() {
			got, err := m.InitLocal()
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(filepath.Join(work, ".charnn")))

			again, err := m.Target("")
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(got))
		})
	})
})
