// Package cache remembers which source files last parsed cleanly so repeated
// checks only reparse what changed.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

type Project struct {
	ID      string
	Path    string
	Dir     string
	SumFile string

	sums   map[string]string
	mode   string
	logger *slog.Logger
}

// Result is the outcome of checking one file. Cached is set when the file
// was skipped because it matched its last clean hash.
type Result struct {
	File     string
	Err      error
	Warnings int
	Cached   bool
}

// ParseFunc parses one file and reports how many warnings it raised.
type ParseFunc func(name, src string) (warnings int, err error)

// NewProject prepares the cache for the project at projectPath. The ID is
// the md5 of the absolute project path.
func NewProject(cacheDir, projectPath string) (*Project, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	h := md5.New()
	io.Copy(h, strings.NewReader(abs))
	id := fmt.Sprintf("%x", h.Sum(nil))

	return &Project{
		ID:      id,
		Path:    abs,
		Dir:     cacheDir,
		SumFile: filepath.Join(cacheDir, id+".gob"),
		sums:    make(map[string]string),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

func (p *Project) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// SetMode names the lexing mode the files are parsed in. It is part of every
// hash, so a file that was clean in one mode is reparsed in another.
func (p *Project) SetMode(mode string) {
	p.mode = mode
}

func (p *Project) sum(src []byte) string {
	h := md5.New()
	io.WriteString(h, p.mode)
	h.Write([]byte{0})
	h.Write(src)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Load reads the saved hashes. A missing sum file leaves the cache empty.
func (p *Project) Load() error {
	f, err := os.Open(p.SumFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	sums := make(map[string]string)
	if err := gob.NewDecoder(f).Decode(&sums); err != nil {
		return fmt.Errorf("reading %s: %w", p.SumFile, err)
	}
	p.sums = sums
	return nil
}

func (p *Project) Save() error {
	f, err := os.Create(p.SumFile)
	if err != nil {
		return err
	}

	if err := gob.NewEncoder(f).Encode(p.sums); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", p.SumFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", p.SumFile, err)
	}
	return nil
}

type checked struct {
	Result
	sum string
}

// Check runs parse over every file concurrently. Files whose content hash
// matches the last clean run are skipped. Files that parse without errors or
// warnings are recorded, the rest are forgotten. Results are sorted by file
// name.
func (p *Project) Check(ctx context.Context, files []string, parse ParseFunc) []Result {
	var wg sync.WaitGroup
	results := make(chan checked, len(files))

	for _, file := range files {
		wg.Add(1)
		go func(file string, known string) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				results <- checked{Result: Result{File: file, Err: err}}
				return
			}

			src, err := os.ReadFile(file)
			if err != nil {
				results <- checked{Result: Result{File: file, Err: err}}
				return
			}
			sum := p.sum(src)
			if sum == known {
				results <- checked{Result: Result{File: file, Cached: true}, sum: sum}
				return
			}

			warnings, err := parse(file, string(src))
			results <- checked{Result: Result{File: file, Err: err, Warnings: warnings}, sum: sum}
		}(file, p.sums[file])
	}

	wg.Wait()
	close(results)

	var out []Result
	for r := range results {
		if r.Err != nil || r.Warnings > 0 {
			delete(p.sums, r.File)
		} else {
			p.sums[r.File] = r.sum
		}
		p.logger.Debug("checked", "file", r.File, "cached", r.Cached, "ok", r.Err == nil)
		out = append(out, r.Result)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].File < out[j].File
	})
	return out
}
