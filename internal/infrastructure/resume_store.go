package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrResumeNotFound is returned by Open for unknown or malformed locators.
var ErrResumeNotFound = errors.New("resume not found")

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ResumeStore keeps uploaded resumes as files in one directory. A locator
// is the stored file name.
type ResumeStore struct {
	dir string
}

func NewResumeStore(dir string) (*ResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload folder: %w", err)
	}
	return &ResumeStore{dir: dir}, nil
}

// SanitizeFilename reduces an uploaded name to a safe base name.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, "._")
	if len(name) > 120 {
		ext := filepath.Ext(name)
		if len(ext) > 10 {
			ext = ""
		}
		name = name[:120-len(ext)] + ext
	}
	if name == "" {
		return "resume"
	}
	return name
}

// Save writes data under "<uuid>_<sanitized name>". Bytes go to a temp file
// first and are renamed into place, so a partial file is never visible.
func (s *ResumeStore) Save(ctx context.Context, data io.Reader, originalName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	locator := uuid.NewString() + "_" + SanitizeFilename(originalName)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := io.Copy(tmp, data); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, locator)); err != nil {
		return "", err
	}
	return locator, nil
}

func (s *ResumeStore) path(locator string) (string, error) {
	if locator == "" || locator != filepath.Base(locator) || strings.HasPrefix(locator, ".") {
		return "", ErrResumeNotFound
	}
	return filepath.Join(s.dir, locator), nil
}

func (s *ResumeStore) Open(ctx context.Context, locator string) (io.ReadCloser, error) {
	p, err := s.path(locator)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return f, nil
}

// Delete removes a stored resume; a missing file is not an error.
func (s *ResumeStore) Delete(ctx context.Context, locator string) error {
	p, err := s.path(locator)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
