package training

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// ArtifactStore persists trained model artifacts under versioned filenames.
// Writes go through a temp file and a rename, so a reader never observes a
// partially written artifact at its final path.
type ArtifactStore struct {
	dir string
}

// NewArtifactStore creates a store rooted at dir.
func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: dir}
}

func (s *ArtifactStore) baseName(version int64) string {
	return fmt.Sprintf("Faces_v%d", version)
}

// Write persists the native artifact and its interchange-format copy for the
// given version and returns their paths. Version uniqueness makes the
// filenames collision-free.
func (s *ArtifactStore) Write(version int64, artifact, coreml []byte) (modelPath, coremlPath string, err error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", "", err
	}
	base := s.baseName(version)
	modelPath = filepath.Join(s.dir, base+".model")
	coremlPath = filepath.Join(s.dir, base+".mlmodel")

	if err := writeAtomic(modelPath, artifact); err != nil {
		return "", "", err
	}
	if err := writeAtomic(coremlPath, coreml); err != nil {
		return "", "", err
	}
	return modelPath, coremlPath, nil
}

// ReadArtifact loads the native artifact for a version.
func (s *ArtifactStore) ReadArtifact(version int64) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, s.baseName(version)+".model"))
}

// PublishedURL returns the URL path clients download the interchange copy
// from: the handler layer serves the artifact directory under /models and
// prefixes scheme and host at response time.
func (s *ArtifactStore) PublishedURL(version int64) string {
	return path.Join("models", s.baseName(version)+".mlmodel")
}

func writeAtomic(dst string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), filepath.Base(dst)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
