// Package content loads the blocks that the browser pages through. A block
// is an opaque unit of text as far as pagination is concerned; this package
// only decides how a path is split into blocks and keeps the resulting
// snapshot ordered.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MaxBlockSize caps how much of a file is read into a single block.
const MaxBlockSize = 64 * 1024

// Block is one content block.
type Block struct {
	ModTime time.Time
	Name    string
	Body    string
	Size    int64
}

// Source provides the current ordered snapshot of blocks on demand.
type Source interface {
	// Blocks returns the ordered snapshot. Implementations re-read their
	// backing data on every call, so a refresh is just another call.
	Blocks() ([]Block, error)

	fmt.Stringer
}

// NewSource returns a [DirSource] or [FileSource] depending on what the
// path points at.
func NewSource(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}

	if info.IsDir() {
		return NewDirSource(path), nil
	}

	return NewFileSource(path), nil
}

// DirSource treats every regular file in a directory as one block, ordered
// by file name. Hidden files are skipped.
type DirSource struct {
	path string
}

func NewDirSource(path string) *DirSource {
	return &DirSource{path: path}
}

func (s *DirSource) Blocks() ([]Block, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", s.path, err)
	}

	blocks := []Block{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", entry.Name(), err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		body, err := readCapped(filepath.Join(s.path, entry.Name()))
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, Block{
			Name:    entry.Name(),
			Body:    body,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Name < blocks[j].Name
	})

	return blocks, nil
}

func (s *DirSource) String() string {
	return s.path
}

// FileSource splits a single file into blocks on blank lines, so each
// paragraph or stanza pages separately.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Blocks() ([]Block, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", s.path, err)
	}

	data, err := readCapped(s.path)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(s.path)

	blocks := []Block{}
	for _, section := range splitSections(data) {
		blocks = append(blocks, Block{
			Name:    fmt.Sprintf("%s #%d", base, len(blocks)+1),
			Body:    section,
			Size:    int64(len(section)),
			ModTime: info.ModTime(),
		})
	}

	return blocks, nil
}

func (s *FileSource) String() string {
	return s.path
}

func splitSections(data string) []string {
	normalized := strings.ReplaceAll(data, "\r\n", "\n")

	sections := []string{}
	for _, part := range strings.Split(normalized, "\n\n") {
		part = strings.TrimSpace(part)
		if part != "" {
			sections = append(sections, part)
		}
	}

	return sections
}

func readCapped(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the user.
	if err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}

	if len(data) > MaxBlockSize {
		data = data[:MaxBlockSize]
	}

	return string(data), nil
}
