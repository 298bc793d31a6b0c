package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	logFileName = "netguard.log"
	logFilePerm = 0o600
)

// LogRotator is an io.Writer that rolls the active log file once it grows past
// maxSize. Rolled files are renamed with a timestamp suffix and optionally gzipped.
type LogRotator struct {
	mu         sync.Mutex
	dir        string
	maxSize    int64
	maxAge     time.Duration
	maxBackups int
	compress   bool
	file       *os.File
	size       int64
	now        func() time.Time
}

// NewLogRotator opens (or creates) netguard.log inside dir.
func NewLogRotator(dir string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) (*LogRotator, error) {
	r := &LogRotator{
		dir:        dir,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxAge:     time.Duration(maxAgeDays) * 24 * time.Hour,
		maxBackups: maxBackups,
		compress:   compress,
		now:        time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *LogRotator) Path() string {
	return filepath.Join(r.dir, logFileName)
}

func (r *LogRotator) open() error {
	path := r.Path()
	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = f
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.maxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.roll(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) roll() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	r.file = nil

	backup := filepath.Join(r.dir, fmt.Sprintf("%s.%s", logFileName, r.now().Format("20060102-150405.000")))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("failed to roll log file: %w", err)
	}

	if r.compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress %s: %v\n", backup, err)
		}
	}

	r.prune()
	return r.open()
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		_ = out.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}

// prune drops rolled files older than maxAge, then the oldest beyond maxBackups.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	type rolled struct {
		name string
		mod  time.Time
	}
	var kept []rolled
	now := r.now()

	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), logFileName+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			_ = os.Remove(filepath.Join(r.dir, e.Name()))
			continue
		}
		kept = append(kept, rolled{name: e.Name(), mod: info.ModTime()})
	}

	if r.maxBackups <= 0 || len(kept) <= r.maxBackups {
		return
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].mod.Before(kept[j].mod) })
	for _, old := range kept[:len(kept)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.dir, old.name))
	}
}

// Close closes the active file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
