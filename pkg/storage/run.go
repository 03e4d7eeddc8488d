package storage

import (
	"time"
)

// NewRun builds a run record stamped with a fresh ID and the current time.
func NewRun(dataPath, artifactDir string, categories []string) *Run {
	return &Run{
		ID:          NewRunID(),
		CreatedAt:   time.Now().UTC(),
		DataPath:    dataPath,
		ArtifactDir: artifactDir,
		Categories:  append([]string(nil), categories...),
	}
}
