package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/penwyp/go-expiry-bar/internal/core/model"
	"github.com/penwyp/go-expiry-bar/internal/util"
)

// ErrUnsupportedFormat is returned for files whose extension is not one of
// .json, .jsonl, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("unsupported entry file format")

// Parser reads entry files. Parsed files are cached until their size or
// modification time changes.
type Parser struct {
	concurrency int
	mu          sync.Mutex
	cache       map[string]cachedFile
}

type cachedFile struct {
	size    int64
	modTime time.Time
	entries []model.Entry
}

// ParseResult represents the result of parsing a single file.
type ParseResult struct {
	File    string
	Entries []model.Entry
	Error   error
}

// document is the object form of a json or yaml entry file.
type document struct {
	Entries []model.Entry `json:"entries" yaml:"entries"`
}

// NewParser creates a new Parser instance.
func NewParser(concurrency int) *Parser {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Parser{
		concurrency: concurrency,
		cache:       make(map[string]cachedFile),
	}
}

// ParseFile reads the entries of one file. The format follows the extension.
func (p *Parser) ParseFile(path string) ([]model.Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	if cached, ok := p.cache[path]; ok && cached.size == info.Size() && cached.modTime.Equal(info.ModTime()) {
		p.mu.Unlock()
		util.LogDebugf("Cache hit for entry file: %s", path)
		return cached.entries, nil
	}
	p.mu.Unlock()

	util.LogDebugf("Start parsing file: %s", path)

	var entries []model.Entry
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".jsonl":
		entries, err = parseJSONL(path)
	case ".json":
		entries, err = parseJSON(path)
	case ".yaml", ".yml":
		entries, err = parseYAML(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	p.mu.Lock()
	p.cache[path] = cachedFile{size: info.Size(), modTime: info.ModTime(), entries: entries}
	p.mu.Unlock()

	util.LogDebugf("Parsed %d entries from %s", len(entries), path)
	return entries, nil
}

// ParseFiles parses multiple files concurrently and returns a channel of ParseResult.
func (p *Parser) ParseFiles(files []string) <-chan ParseResult {
	start := time.Now()
	results := make(chan ParseResult, len(files))
	var wg sync.WaitGroup

	util.LogDebugf("Start concurrent parsing of %d files, concurrency: %d", len(files), p.concurrency)

	semaphore := make(chan struct{}, p.concurrency)

	for _, file := range files {
		wg.Add(1)
		go func(f string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			entries, err := p.ParseFile(f)
			if err != nil {
				util.LogDebugf("File parsing failed: %s - %v", f, err)
			}

			results <- ParseResult{
				File:    f,
				Entries: entries,
				Error:   err,
			}
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
		util.LogDebugf("Concurrent parsing finished, total duration: %v", time.Since(start))
	}()

	return results
}

// Forget drops the cached entries of path.
func (p *Parser) Forget(path string) {
	p.mu.Lock()
	delete(p.cache, path)
	p.mu.Unlock()
}

func parseJSONL(path string) ([]model.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []model.Entry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	lineCount := 0
	for scanner.Scan() {
		lineCount++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry model.Entry
		if err := sonic.Unmarshal(line, &entry); err != nil {
			util.LogWarn(fmt.Sprintf("Skip invalid JSON line %s:%d - %v", path, lineCount, err))
			continue
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseJSON(path string) ([]model.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '{' {
		var doc document
		if err := sonic.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return doc.Entries, nil
	}

	var entries []model.Entry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseYAML(path string) ([]model.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	node := root.Content[0]
	if node.Kind == yaml.MappingNode {
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Entries, nil
	}

	var entries []model.Entry
	if err := node.Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}
