package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/penwyp/go-expiry-bar/internal/util"
)

// EntryExtensions lists the file extensions the parser understands.
var EntryExtensions = []string{".json", ".jsonl", ".yaml", ".yml"}

// FileScanner finds entry files below a directory
type FileScanner struct {
	baseDir    string
	extensions map[string]struct{}
}

// NewFileScanner creates a new FileScanner instance
func NewFileScanner(baseDir string) *FileScanner {
	exts := make(map[string]struct{}, len(EntryExtensions))
	for _, ext := range EntryExtensions {
		exts[ext] = struct{}{}
	}
	return &FileScanner{
		baseDir:    baseDir,
		extensions: exts,
	}
}

// Scan walks the directory and returns every entry file path in lexical order.
// Unreadable paths are skipped.
func (s *FileScanner) Scan() ([]string, error) {
	start := time.Now()
	var files []string
	dirCount := 0
	totalCount := 0

	util.LogDebug(fmt.Sprintf("Start scanning directory: %s", s.baseDir))

	err := filepath.Walk(s.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			util.LogDebug(fmt.Sprintf("Skip file (error): %s - %v", path, err))
			return nil
		}

		if info.IsDir() {
			dirCount++
			return nil
		}

		totalCount++
		if _, ok := s.extensions[strings.ToLower(filepath.Ext(path))]; ok {
			files = append(files, path)
		}

		return nil
	})

	sort.Strings(files)

	util.LogDebug(fmt.Sprintf("File scan completed: duration %v, scanned %d directories, %d files, found %d entry files",
		time.Since(start), dirCount, totalCount, len(files)))

	return files, err
}

// Expand replaces every directory in paths with the entry files it contains.
// Plain files are kept as given, in order.
func Expand(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			files = append(files, path)
			continue
		}

		found, err := NewFileScanner(path).Scan()
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no entry files found in %s", path)
		}
		files = append(files, found...)
	}
	return files, nil
}
