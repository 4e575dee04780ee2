package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const backupTimeFormat = "20060102-150405.000"

// RotateConfig sizes a RotatingFile. Zero MaxBackups or MaxAge keeps every
// backup.
type RotateConfig struct {
	Path       string
	MaxSize    int64
	MaxBackups int
	MaxAge     time.Duration
	Compress   bool
}

// RotatingFile appends to Path and moves it aside as Path.<timestamp>[.gz]
// once the next write would push it past MaxSize.
//
// Rotation never writes to stderr; a full-screen UI owns the terminal.
// Housekeeping failures are kept and returned by Err.
type RotatingFile struct {
	cfg RotateConfig
	now func() time.Time

	mu   sync.Mutex
	file *os.File
	size int64
	errs []error
}

// NewRotatingFile opens cfg.Path for appending.
func NewRotatingFile(cfg RotateConfig) (*RotatingFile, error) {
	if cfg.Path == "" {
		return nil, errors.New("log path is required")
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 10 << 20
	}
	r := &RotatingFile{cfg: cfg, now: time.Now}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RotatingFile) open() error {
	file, err := os.OpenFile(r.cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	r.file = file
	r.size = info.Size()
	return nil
}

func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.cfg.MaxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate must be called with r.mu held.
func (r *RotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		r.errs = append(r.errs, err)
	}
	r.file = nil

	backup := r.cfg.Path + "." + r.now().Format(backupTimeFormat)
	if err := os.Rename(r.cfg.Path, backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	if r.cfg.Compress {
		if err := gzipFile(backup); err != nil {
			r.errs = append(r.errs, fmt.Errorf("compress %s: %w", backup, err))
		}
	}
	r.prune()
	return r.open()
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, in.Close()) }()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err == nil {
		err = zw.Close()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Join(err, os.Remove(path+".gz"))
	}
	return os.Remove(path)
}

// prune removes backups older than MaxAge, then the oldest beyond MaxBackups.
func (r *RotatingFile) prune() {
	dir, base := filepath.Dir(r.cfg.Path), filepath.Base(r.cfg.Path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		r.errs = append(r.errs, err)
		return
	}

	type backup struct {
		name string
		mod  time.Time
	}
	var backups []backup
	now := r.now()
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), base+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if r.cfg.MaxAge > 0 && now.Sub(info.ModTime()) > r.cfg.MaxAge {
			r.remove(filepath.Join(dir, e.Name()))
			continue
		}
		backups = append(backups, backup{name: e.Name(), mod: info.ModTime()})
	}

	if r.cfg.MaxBackups <= 0 || len(backups) <= r.cfg.MaxBackups {
		return
	}
	slices.SortFunc(backups, func(a, b backup) int {
		if c := a.mod.Compare(b.mod); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	for _, b := range backups[:len(backups)-r.cfg.MaxBackups] {
		r.remove(filepath.Join(dir, b.name))
	}
}

func (r *RotatingFile) remove(path string) {
	if err := os.Remove(path); err != nil {
		r.errs = append(r.errs, err)
	}
}

// Err returns the housekeeping failures seen so far.
func (r *RotatingFile) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return errors.Join(r.errs...)
}

// Close closes the active file. A later Write reopens it.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
