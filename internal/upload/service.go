package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"printmill-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Save(ctx context.Context, filename, mime string, r io.Reader) (*FileRef, error)
	Resolve(filename string) (string, error)
}

type service struct {
	dir string
}

func NewService(dir string) (Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &service{dir: dir}, nil
}

func (s *service) Save(ctx context.Context, filename, mime string, r io.Reader) (*FileRef, error) {
	log := logger.FromCtx(ctx)

	// Stored under a fresh uuid so client filenames never touch the disk.
	name := uuid.NewString() + filepath.Ext(filename)
	dest := filepath.Join(s.dir, name)

	out, err := os.Create(dest)
	if err != nil {
		log.Error("failed to create upload file", zap.String("dest", dest), zap.Error(err))
		return nil, err
	}
	defer out.Close()

	size, err := io.Copy(out, r)
	if err != nil {
		log.Error("failed to write upload file", zap.String("dest", dest), zap.Error(err))
		return nil, err
	}

	log.Info("file uploaded",
		zap.String("filename", filename),
		zap.String("stored_as", name),
		zap.Int64("size", size),
	)

	return &FileRef{
		Filename: filename,
		Path:     "/uploads/" + name,
		Size:     size,
		Mime:     mime,
	}, nil
}

// Resolve returns the on-disk path for a stored filename.
func (s *service) Resolve(filename string) (string, error) {
	if filename == "" || filepath.Base(filename) != filename {
		return "", ErrInvalidFilename
	}

	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", ErrFileNotFound
	}
	return path, nil
}
