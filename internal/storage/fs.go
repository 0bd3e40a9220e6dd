package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FSStore keeps objects on the local filesystem under a root directory.
// GetURL returns file:// URLs, which is enough for local text-mode runs
// where the document never leaves the machine.
type FSStore struct {
	root   string
	logger *slog.Logger
}

func NewFSStore(root string, logger *slog.Logger) (*FSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if root == "" {
		root = "./data"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &FSStore{root: root, logger: logger}, nil
}

func (s *FSStore) Upload(_ context.Context, projectID string, filename string, content io.Reader) (string, error) {
	key := filepath.Join(projectID, uuid.New().String()+"_"+filepath.Base(filename))
	path := filepath.Join(s.root, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()
	if _, err := io.Copy(f, content); err != nil {
		return "", err
	}
	s.logger.Info("storage.uploaded", "root", s.root, "key", key)
	return key, nil
}

func (s *FSStore) GetURL(_ context.Context, key string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(s.root, key))
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("object %q: %w", key, err)
	}
	return (&url.URL{Scheme: "file", Path: abs}).String(), nil
}

func (s *FSStore) Download(_ context.Context, key, localPath string) error {
	src, err := os.Open(filepath.Join(s.root, key))
	if err != nil {
		return fmt.Errorf("object %q: %w", key, err)
	}
	defer func() { _ = src.Close() }()

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer func() { _ = dst.Close() }()
	_, err = io.Copy(dst, src)
	return err
}

func (s *FSStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(filepath.Join(s.root, key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
