// Package file is implementation of storage interface over a directory, one file per key.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/socialspark/spark/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "file")

var errInvalidKey = errors.New("invalid key")

const ext = ".json"

type fs struct {
	dir string
}

// New creates new instance of file storage. dir is created when missing.
func New(dir string) (storage.Storage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}

	return fs{dir: dir}, nil
}

func (s fs) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", errInvalidKey, key)
	}

	return filepath.Join(s.dir, key+ext), nil
}

func (s fs) Load(_ context.Context, key string) (string, error) {
	p, err := s.path(key)
	if err != nil {
		return "", err
	}

	b, err := ioutil.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", storage.ErrNotFound
		}

		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return string(b), nil
}

// Save writes into a temporary file and renames it over the old one,
// so a crash never leaves a half-written record.
func (s fs) Save(_ context.Context, key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	f, err := ioutil.TempFile(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.WriteString(value); err != nil {
		s.cleanup(f)
		return fmt.Errorf("failed to write: %w", err)
	}

	if err := f.Sync(); err != nil {
		s.cleanup(f)
		return fmt.Errorf("failed to sync: %w", err)
	}

	if err := f.Close(); err != nil {
		s.cleanup(f)
		return fmt.Errorf("failed to close: %w", err)
	}

	if err := os.Rename(f.Name(), p); err != nil {
		s.cleanup(f)
		return fmt.Errorf("failed to rename: %w", err)
	}

	return nil
}

func (s fs) cleanup(f *os.File) {
	_ = f.Close()

	if err := os.Remove(f.Name()); err != nil && !os.IsNotExist(err) {
		log.WithError(err).WithField("file", f.Name()).Warn("failed to remove temp file")
	}
}

func (s fs) Remove(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	return nil
}

func (s fs) Ping(_ context.Context) error {
	fi, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("failed to stat storage dir: %w", err)
	}

	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}

	return nil
}
