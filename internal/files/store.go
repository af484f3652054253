// Package files stores and serves uploaded resume documents under a fixed
// storage root. Downloads refuse any path that resolves outside the root.
package files

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidFileType = errors.New("file type not allowed")
	ErrOutsideRoot     = errors.New("path resolves outside storage root")
	ErrFileNotFound    = errors.New("file not found")
)

// resumeExtensions maps allowed resume extensions to their content types.
var resumeExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Store manages files under a single root directory.
type Store struct {
	root string
}

// NewStore resolves root and creates the resume subdirectory.
func NewStore(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(abs, "resumes"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Store{root: abs}, nil
}

// SaveResume writes an uploaded resume and returns its path relative to
// the storage root. Only pdf, doc and docx files are accepted.
func (s *Store) SaveResume(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := resumeExtensions[ext]; !ok {
		return "", ErrInvalidFileType
	}

	base := unsafeChars.ReplaceAllString(strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename)), "_")
	name := fmt.Sprintf("resume-%s-%s%s", base, uuid.NewString(), ext)
	rel := filepath.Join("resumes", name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return rel, nil
}

// Resolve turns a stored relative path into an absolute one, rejecting
// anything that escapes the root.
func (s *Store) Resolve(rel string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(s.root, rel))
	if err != nil {
		return "", err
	}
	if abs != s.root && !strings.HasPrefix(abs, s.root+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return "", ErrFileNotFound
		}
		return "", err
	}
	return abs, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *Store) Remove(rel string) error {
	abs, err := s.Resolve(rel)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			return nil
		}
		return err
	}
	return os.Remove(abs)
}

// ContentType returns the content type for a stored file path, falling
// back to a generic binary type.
func ContentType(path string) string {
	if ct, ok := resumeExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// DownloadName derives the attachment filename for a candidate's resume.
func DownloadName(firstName, lastName, path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	clean := func(s string) string { return unsafeChars.ReplaceAllString(s, "_") }
	return fmt.Sprintf("%s_%s_Resume%s", clean(firstName), clean(lastName), ext)
}
