package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dagger/charnn/internal/dagger"
)

// Build and return a directory with the charnn and charnnapi binaries.
// The SQLite run store needs cgo, so binaries are built for the
// container's own platform.
func (c *Charnn) Build(
	ctx context.Context,

	// Linker flags for go build
	// +optional
	// +default="-s -w"
	ldflags string,
) *dagger.Directory {
	const path = "bin/"

	build := c.goContainer().
		WithExec([]string{"go", "build", "-ldflags", ldflags, "-o", path, "./cli/charnn"}).
		WithExec([]string{"go", "build", "-ldflags", ldflags, "-o", path, "./cli/charnnapi"})

	return dag.Directory().WithDirectory(path, build.Directory(path))
}

// BuildRelease compiles versioned binaries with embedded version info
func (c *Charnn) BuildRelease(
	ctx context.Context,

	// Version string of build
	version string,

	// Git commit SHA of build
	commit string,
) *dagger.Directory {
	buildtime := time.Now()

	ldflags := []string{
		"-s",
		"-w",
		fmt.Sprintf("-X 'github.com/papercomputeco/charnn/pkg/utils.Version=%s'", version),
		fmt.Sprintf("-X 'github.com/papercomputeco/charnn/pkg/utils.Sha=%s'", commit),
		fmt.Sprintf("-X 'github.com/papercomputeco/charnn/pkg/utils.Buildtime=%s'", buildtime),
	}

	return c.Build(ctx, strings.Join(ldflags, " "))
}
