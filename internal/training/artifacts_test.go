package training

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestArtifactStoreWriteAndRead(t *testing.T) {
	store := NewArtifactStore(t.TempDir())

	modelPath, coremlPath, err := store.Write(3, []byte("native"), []byte("coreml"))
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if filepath.Base(modelPath) != "Faces_v3.model" {
		t.Fatalf("unexpected model filename: %s", modelPath)
	}
	if filepath.Base(coremlPath) != "Faces_v3.mlmodel" {
		t.Fatalf("unexpected coreml filename: %s", coremlPath)
	}

	data, err := store.ReadArtifact(3)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(data, []byte("native")) {
		t.Fatalf("unexpected artifact contents: %q", data)
	}

	coreml, err := os.ReadFile(coremlPath)
	if err != nil {
		t.Fatalf("read coreml failed: %v", err)
	}
	if !bytes.Equal(coreml, []byte("coreml")) {
		t.Fatalf("unexpected coreml contents: %q", coreml)
	}
}

func TestArtifactStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewArtifactStore(dir)

	if _, _, err := store.Write(1, []byte("a"), []byte("b")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir failed: %v", err)
	}
	if len(entries) != 2 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected exactly the two artifacts, got %v", names)
	}
}

func TestPublishedURLIsRelative(t *testing.T) {
	store := NewArtifactStore(t.TempDir())
	if got := store.PublishedURL(12); got != "models/Faces_v12.mlmodel" {
		t.Fatalf("unexpected published url: %s", got)
	}
}
