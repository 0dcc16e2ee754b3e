package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for the handler layer to map onto HTTP statuses.
var (
	ErrInvalidPath = errors.New("invalid path")
	ErrNotFound    = errors.New("path not found")
	ErrNotEmpty    = errors.New("directory not empty")
)

// Entry describes one item in a directory listing.
type Entry struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size *int64 `json:"size,omitempty"`
}

// WriteResult reports the outcome of a write.
type WriteResult struct {
	Status string // "created" or "updated"
	Size   int
}

// Service performs file operations confined to a root directory. Every
// client-supplied path is resolved and checked for containment before
// any filesystem call.
type Service struct {
	root string
}

// New creates a service rooted at dataDir. The directory does not need
// to exist yet; operations fail naturally if it is absent.
func New(dataDir string) (*Service, error) {
	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data dir: %w", err)
	}
	return &Service{root: abs}, nil
}

// Root returns the resolved data directory.
func (s *Service) Root() string {
	return s.root
}

// SafePath resolves relpath under the root and rejects anything that
// escapes it.
func (s *Service) SafePath(relpath string) (string, error) {
	if relpath == "" {
		return s.root, nil
	}

	target := filepath.Join(s.root, filepath.FromSlash(relpath))
	target = filepath.Clean(target)

	rel, err := filepath.Rel(s.root, target)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, relpath)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, relpath)
	}
	return target, nil
}

// IsDirectory reports whether relpath exists and is a directory.
func (s *Service) IsDirectory(relpath string) bool {
	target, err := s.SafePath(relpath)
	if err != nil {
		return false
	}
	info, err := os.Stat(target)
	return err == nil && info.IsDir()
}

// List returns the sorted contents of a directory.
func (s *Service) List(relpath string) ([]Entry, error) {
	target, err := s.SafePath(relpath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, displayPath(relpath))
		}
		return nil, fmt.Errorf("failed to stat %s: %w", relpath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidPath, relpath)
	}

	dirEntries, err := os.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", relpath, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := Entry{Name: de.Name(), Type: "file"}
		if de.IsDir() {
			entry.Type = "directory"
		} else if fi, err := de.Info(); err == nil {
			size := fi.Size()
			entry.Size = &size
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries, nil
}

// Read returns the content of a file.
func (s *Service) Read(relpath string) (string, int, error) {
	target, err := s.SafePath(relpath)
	if err != nil {
		return "", 0, err
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return "", 0, fmt.Errorf("%w: %s", ErrNotFound, relpath)
		}
		return "", 0, fmt.Errorf("failed to stat %s: %w", relpath, err)
	}
	if info.IsDir() {
		return "", 0, fmt.Errorf("%w: path is a directory: %s", ErrInvalidPath, relpath)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read %s: %w", relpath, err)
	}
	return string(content), len(content), nil
}

// Write stores content at relpath, creating parent directories as needed.
func (s *Service) Write(relpath, content string) (WriteResult, error) {
	target, err := s.SafePath(relpath)
	if err != nil {
		return WriteResult{}, err
	}

	_, statErr := os.Stat(target)
	existed := statErr == nil

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return WriteResult{}, fmt.Errorf("failed to create parent directories for %s: %w", relpath, err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return WriteResult{}, fmt.Errorf("failed to write %s: %w", relpath, err)
	}

	status := "created"
	if existed {
		status = "updated"
	}
	return WriteResult{Status: status, Size: len(content)}, nil
}

// Delete removes a file or an empty directory and returns what was
// removed ("file" or "directory").
func (s *Service) Delete(relpath string) (string, error) {
	target, err := s.SafePath(relpath)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, relpath)
		}
		return "", fmt.Errorf("failed to stat %s: %w", relpath, err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(target)
		if err != nil {
			return "", fmt.Errorf("failed to read directory %s: %w", relpath, err)
		}
		if len(entries) > 0 {
			return "", fmt.Errorf("%w: %s", ErrNotEmpty, relpath)
		}
		if err := os.Remove(target); err != nil {
			return "", fmt.Errorf("failed to remove directory %s: %w", relpath, err)
		}
		return "directory", nil
	}

	if err := os.Remove(target); err != nil {
		return "", fmt.Errorf("failed to remove %s: %w", relpath, err)
	}
	return "file", nil
}

// Mkdir creates a directory (with parents) and reports "created" or
// "exists".
func (s *Service) Mkdir(relpath string) (string, error) {
	target, err := s.SafePath(relpath)
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(target); err == nil {
		if info.IsDir() {
			return "exists", nil
		}
		return "", fmt.Errorf("%w: path exists as file: %s", ErrInvalidPath, relpath)
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", relpath, err)
	}
	return "created", nil
}

func displayPath(relpath string) string {
	if relpath == "" {
		return "/"
	}
	return relpath
}
