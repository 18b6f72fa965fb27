// Package csvfile implements the expense ledger's persistence layer: a
// single comma-delimited UTF-8 file with a fixed header row. The store owns
// the file exclusively; callers interpret row contents.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Header is the canonical column order of the ledger file.
var Header = []string{"date", "category", "amount", "payment_method", "description"}

type Store struct {
	path   string
	logger *slog.Logger

	// mu serializes all file access within the process. Cross-process
	// locking is out of scope and needs an external lock.
	mu sync.Mutex
}

func New(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// EnsureExists creates the backing file with its header row if it is absent.
// Idempotent, safe to call before every operation.
func (s *Store) EnsureExists() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureExistsLocked()
}

func (s *Store) ensureExistsLocked() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat ledger file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create ledger directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("create ledger file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush ledger header: %w", err)
	}

	s.logger.Info("ledger file created", "path", s.path)
	return nil
}

// Append writes one row in canonical column order and flushes before
// returning. Pure append: earlier bytes are never touched.
func (s *Store) Append(fields []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureExistsLocked(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger for append: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		return fmt.Errorf("append ledger row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush ledger row: %w", err)
	}
	return nil
}

// Scan reads the whole file and returns the header plus every following row
// in file order. Rows are returned raw: short rows and unparseable values
// are the caller's problem.
func (s *Store) Scan() (header []string, rows [][]string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureExistsLocked(); err != nil {
		return nil, nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("open ledger for scan: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err = r.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read ledger header: %w", err)
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read ledger row: %w", err)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// Rewrite replaces the file's full contents with the header followed by the
// given rows, preserving their order. Used by delete only. The write is a
// single truncate-and-write pass, not crash-atomic.
func (s *Store) Rewrite(header []string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger for rewrite: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if header != nil {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("rewrite ledger header: %w", err)
		}
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("rewrite ledger row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush ledger rewrite: %w", err)
	}
	return nil
}

// Ping reports whether the backing file is reachable, creating it if needed.
// Used by the health endpoint.
func (s *Store) Ping() error {
	return s.EnsureExists()
}
