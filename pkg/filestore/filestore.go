package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Entity is any record addressable by a stable identity.
type Entity interface {
	Identity() string
}

// Store persists one kind of record as a JSON array in a single file. Every
// mutation rewrites the whole collection; the merge-by-identity on Upsert is
// what keeps identities unique within the file.
//
// A store assumes a single writer. Two processes rewriting the same file
// lose updates to whichever overwrite lands last.
type Store[T Entity] struct {
	logger *logrus.Logger
	path   string
}

func New[T Entity](logger *logrus.Logger, path string) *Store[T] {
	return &Store[T]{
		logger: logger,
		path:   path,
	}
}

func (s *Store[T]) Path() string {
	return s.path
}

// Load reads every record in stored order. A missing, empty, or corrupt
// file is an empty collection, never an error; first-run bootstrap depends
// on that.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WithContext(ctx).WithField("path", s.path).WithError(err).Warn("treating unreadable store file as empty")
		}
		return []T{}, nil
	}

	if len(buf) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(buf, &records); err != nil {
		s.logger.WithContext(ctx).WithField("path", s.path).WithError(err).Warn("treating corrupt store file as empty")
		return []T{}, nil
	}

	if records == nil {
		records = []T{}
	}

	return records, nil
}

// Upsert replaces the record whose identity matches, or appends when none
// does, then writes the entire collection back.
func (s *Store[T]) Upsert(ctx context.Context, record T) error {
	records, err := s.Load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range records {
		if records[i].Identity() == record.Identity() {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}

	return s.write(ctx, records)
}

// Delete removes the first record whose identity matches and reports
// whether one was found. The file is only rewritten on a hit.
func (s *Store[T]) Delete(ctx context.Context, id string) (bool, error) {
	records, err := s.Load(ctx)
	if err != nil {
		return false, err
	}

	for i := range records {
		if records[i].Identity() == id {
			records = append(records[:i], records[i+1:]...)
			return true, s.write(ctx, records)
		}
	}

	return false, nil
}

// FindBy returns the first record matching the predicate, in stored order.
func (s *Store[T]) FindBy(ctx context.Context, pred func(T) bool) (T, bool, error) {
	var zero T

	records, err := s.Load(ctx)
	if err != nil {
		return zero, false, err
	}

	for _, record := range records {
		if pred(record) {
			return record, true, nil
		}
	}

	return zero, false, nil
}

// write replaces the store file with the full collection. Writing to a
// temporary file and renaming keeps a crashed write from corrupting the
// previous contents.
func (s *Store[T]) write(ctx context.Context, records []T) error {
	buf, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		s.logger.WithContext(ctx).WithField("path", s.path).WithError(err).Error()
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		s.logger.WithContext(ctx).WithField("path", s.path).WithError(err).Error()
		return err
	}

	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		s.logger.WithContext(ctx).WithField("path", s.path).WithError(err).Error()
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		s.logger.WithContext(ctx).WithField("path", s.path).WithError(err).Error()
		return err
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		s.logger.WithContext(ctx).WithField("path", s.path).WithError(err).Error()
		return err
	}

	return nil
}
