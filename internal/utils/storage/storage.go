package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"Pick-My-Dish/domain"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MaxImageSize is the largest accepted upload, 5 MiB.
const MaxImageSize int64 = 5 << 20

var AllowImage = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

// Storage persists uploaded files and hands back a path relative to the
// upload root. The same relative path is what gets stored in the database.
type Storage interface {
	UploadFile(ctx context.Context, file *multipart.FileHeader, dir string) (string, error)
	DeleteFile(ctx context.Context, relPath string) error
	PublicURL(relPath string) string
}

// ValidateImage enforces the size limit and sniffs the content type.
// It returns the detected MIME type.
func ValidateImage(file *multipart.FileHeader, allowed ...string) (*mimetype.MIME, error) {
	if file.Size > MaxImageSize {
		return nil, domain.NewValidationError("size",
			fmt.Sprintf("image is %d bytes, limit is %d bytes", file.Size, MaxImageSize))
	}

	src, err := file.Open()
	if err != nil {
		return nil, &domain.StorageError{Op: "open upload", Err: err}
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, &domain.StorageError{Op: "read upload", Err: err}
	}
	if len(allowed) == 0 {
		allowed = AllowImage
	}
	for _, a := range allowed {
		if mtype.Is(a) {
			return mtype, nil
		}
	}
	return nil, domain.NewValidationError("type",
		fmt.Sprintf("content type %s is not allowed, expected one of %s", mtype.String(), strings.Join(allowed, ", ")))
}

// GenerateFileName builds recipe-<unix millis>-<random><ext>, keeping the
// client's extension when it has one.
func GenerateFileName(prefix, originalName string, mtype *mimetype.MIME, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" && mtype != nil {
		ext = mtype.Extension()
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s%s", prefix, now.UnixMilli(), suffix, ext)
}

// cleanRelPath rejects absolute paths and parent traversal so stored
// references always stay under the upload root.
func cleanRelPath(rel string) (string, error) {
	rel = strings.ReplaceAll(rel, "\\", "/")
	cleaned := path.Clean("/" + rel)[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(rel, "./") {
		return "", fmt.Errorf("invalid relative path %q", rel)
	}
	return cleaned, nil
}

func filePrefix(dir string) string {
	base := path.Base(strings.TrimSuffix(dir, "/"))
	base = strings.TrimSuffix(base, "s")
	if base == "" || base == "." || base == "/" {
		return "file"
	}
	return base
}
