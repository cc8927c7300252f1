package imagestore

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LabeledImage is one stored photo together with the label derived from its
// enclosing user folder.
type LabeledImage struct {
	Label string
	Path  string
	Data  []byte
}

// Store keeps uploaded photos under one directory per user. It is
// append-only: photos get unique generated filenames, so concurrent writers
// need no coordination.
type Store struct {
	dir    string
	logger *zap.Logger
}

// New creates a store rooted at dir.
func New(dir string, logger *zap.Logger) *Store {
	return &Store{dir: dir, logger: logger.Named("imagestore")}
}

// Save writes one uploaded photo under the user's folder with a generated
// filename and returns the stored path. The extension of the original
// filename is preserved.
func (s *Store) Save(userID uint, originalName string, src io.Reader) (string, error) {
	userDir := filepath.Join(s.dir, strconv.FormatUint(uint64(userID), 10))
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(userDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// Scan reads the full store and returns every photo with its folder-derived
// label. The store may grow while the scan runs; photos that appear or
// vanish mid-scan are tolerated, a later scan will settle them. A missing
// root directory yields an empty result, not an error.
func (s *Store) Scan() ([]LabeledImage, error) {
	var images []LabeledImage
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		label := filepath.Base(filepath.Dir(path))
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		images = append(images, LabeledImage{Label: label, Path: path, Data: data})
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	s.logger.Debug("store scanned", zap.Int("images", len(images)))
	return images, nil
}
