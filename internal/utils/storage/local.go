package storage

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"Pick-My-Dish/domain"
)

type localStorage struct {
	root    string
	baseURL string
}

// NewLocalStorage stores files under root. baseURL is the public prefix
// the root directory is served from, e.g. http://localhost:3000/uploads.
func NewLocalStorage(root, baseURL string) Storage {
	return &localStorage{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *localStorage) UploadFile(ctx context.Context, file *multipart.FileHeader, dir string) (string, error) {
	mtype, err := ValidateImage(file, AllowImage...)
	if err != nil {
		return "", err
	}

	dir, err = cleanRelPath(dir)
	if err != nil {
		return "", domain.NewValidationError("dir", err.Error())
	}
	if err := os.MkdirAll(filepath.Join(s.root, filepath.FromSlash(dir)), 0o755); err != nil {
		return "", &domain.StorageError{Op: "create upload dir", Err: err}
	}

	relPath := path.Join(dir, GenerateFileName(filePrefix(dir), file.Filename, mtype, time.Now()))
	dst := filepath.Join(s.root, filepath.FromSlash(relPath))

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := copyUpload(file, dst); err != nil {
		_ = os.Remove(dst)
		return "", &domain.StorageError{Op: "save upload", Err: err}
	}
	return relPath, nil
}

func copyUpload(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (s *localStorage) DeleteFile(_ context.Context, relPath string) error {
	relPath, err := cleanRelPath(relPath)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.root, filepath.FromSlash(relPath)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return &domain.StorageError{Op: "delete upload", Err: err}
	}
	return nil
}

func (s *localStorage) PublicURL(relPath string) string {
	return s.baseURL + "/" + strings.TrimPrefix(relPath, "/")
}
