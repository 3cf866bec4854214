package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var (
	ErrEmptyFile      = errors.New("upload: file is empty")
	ErrTypeNotAllowed = errors.New("upload: content type not allowed")
)

// Result makes the best-effort outcome explicit instead of a swallowed error:
// a skipped upload still lets the submission proceed, but the skip is visible.
type Result struct {
	Stored   bool
	FileName string
	Reason   string
}

func Stored(name string) Result {
	return Result{Stored: true, FileName: name}
}

func Skipped(reason string) Result {
	return Result{Stored: false, Reason: reason}
}

// Store persists multipart payloads under a single directory, constrained to
// an allow list of content types.
type Store struct {
	dir     string
	allowed []string
}

func NewStore(dir string, allowed []string) *Store {
	return &Store{dir: dir, allowed: allowed}
}

// Save writes the file under a generated name and returns it. The original
// client file name never touches the filesystem.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", ErrEmptyFile
	}

	contentType := file.Header.Get("Content-Type")
	if !s.typeAllowed(contentType) {
		return "", ErrTypeNotAllowed
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return name, nil
}

func (s *Store) typeAllowed(contentType string) bool {
	for _, allowed := range s.allowed {
		if contentType == allowed {
			return true
		}
	}
	return false
}
