// Package repository provides the flat-file persistence layer.
package repository

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lucasvtf/municcasign-code-challenge/internal/domain"
	apperrors "github.com/lucasvtf/municcasign-code-challenge/pkg/errors"
)

// JSONStore persists a homogeneous collection as a JSON array in a
// single file. Every Load re-reads the whole file and every Save
// rewrites it in full. There is no locking and no atomic rename:
// concurrent writers race on the backing file.
type JSONStore[T any] struct {
	path   string
	logger domain.Logger
}

// NewJSONStore creates a store bound to the given file path.
func NewJSONStore[T any](path string, logger domain.Logger) *JSONStore[T] {
	return &JSONStore[T]{
		path:   path,
		logger: logger,
	}
}

// Load reads the backing file and decodes it as a JSON array.
func (s *JSONStore[T]) Load() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Error("Failed to read collection file", err, "path", s.path)
		return nil, apperrors.NewStorageError("failed to read collection file", err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Error("Failed to decode collection file", err, "path", s.path)
		return nil, apperrors.NewStorageError("failed to decode collection file", err)
	}

	return records, nil
}

// Save serializes the full collection back to the backing file,
// overwriting prior content.
func (s *JSONStore[T]) Save(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("failed to encode collection", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.logger.Error("Failed to write collection file", err, "path", s.path)
		return apperrors.NewStorageError("failed to write collection file", err)
	}

	return nil
}

// EnsureFile creates the file with an empty JSON array when it does not
// exist yet, creating parent directories as needed. Existing files are
// left untouched.
func EnsureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return apperrors.NewStorageError("failed to stat collection file", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create data directory", err)
	}
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		return apperrors.NewStorageError("failed to seed collection file", err)
	}
	return nil
}
