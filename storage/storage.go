// Package storage saves uploaded files on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for file extensions outside the
// allow-list.
var ErrUnsupportedType = errors.New("unsupported file type")

var documentExts = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".docx": true,
}

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Store writes uploads below a single base directory.
type Store struct {
	baseDir string
}

func New(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &Store{baseDir: baseDir}, nil
}

// SavePostAttachment stores one post document under
// <base>/<role>_<userID>/posts/<postID>/multimedia. Stored names are
// random to avoid collisions between same-named uploads.
func (s *Store) SavePostAttachment(role, userID, postID, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !documentExts[ext] {
		return "", ErrUnsupportedType
	}

	dir := filepath.Join(s.baseDir, role+"_"+userID, "posts", postID, "multimedia")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, uuid.NewString()+ext)
	if err := writeFile(path, r); err != nil {
		return "", err
	}
	return path, nil
}

// SaveProfilePicture stores the picture as profile_<userID><ext> under a
// per-role folder, removing any previous picture for the user first.
func (s *Store) SaveProfilePicture(role, userID, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExts[ext] {
		return "", ErrUnsupportedType
	}

	dir := filepath.Join(s.baseDir, role+"pfp")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	old, err := filepath.Glob(filepath.Join(dir, fmt.Sprintf("profile_%s.*", userID)))
	if err != nil {
		return "", err
	}
	for _, f := range old {
		if err := os.Remove(f); err != nil {
			return "", err
		}
	}

	path := filepath.Join(dir, "profile_"+userID+ext)
	if err := writeFile(path, r); err != nil {
		return "", err
	}
	return path, nil
}

// SaveResume stores the resume under <base>/resumes/<userID>, keeping the
// sanitized original name. A user has at most one resume: the directory
// is cleared before writing.
func (s *Store) SaveResume(userID, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !documentExts[ext] {
		return "", ErrUnsupportedType
	}

	dir := filepath.Join(s.baseDir, "resumes", userID)
	if err := os.RemoveAll(dir); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, SanitizeFilename(filename))
	if err := writeFile(path, r); err != nil {
		return "", err
	}
	return path, nil
}

// SanitizeFilename strips path components and replaces characters that
// are unsafe in file names.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		out = "file"
	}
	return out
}

func writeFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return err
	}
	return f.Close()
}
