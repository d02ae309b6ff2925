package storage

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"Pick-My-Dish/domain"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.UnixMilli(1700000000000)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestLocalStorage_UploadFile(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root, "http://localhost:3000/uploads/")

	rel, err := store.UploadFile(context.Background(), fileHeader(t, "Pancakes.PNG", pngHeader), "recipes")
	require.NoError(t, err)

	assert.False(t, filepath.IsAbs(rel))
	assert.True(t, strings.HasPrefix(rel, "recipes/recipe-"), rel)
	assert.True(t, strings.HasSuffix(rel, ".png"), rel)

	stored, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)
	assert.Equal(t, "http://localhost:3000/uploads/"+rel, store.PublicURL(rel))

	require.NoError(t, store.DeleteFile(context.Background(), rel))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_UniqueNames(t *testing.T) {
	store := NewLocalStorage(t.TempDir(), "")

	a, err := store.UploadFile(context.Background(), fileHeader(t, "a.png", pngHeader), "recipes")
	require.NoError(t, err)
	b, err := store.UploadFile(context.Background(), fileHeader(t, "a.png", pngHeader), "recipes")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestLocalStorage_RejectsOversizedImage(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root, "")

	big := append(append([]byte{}, pngHeader...), make([]byte, MaxImageSize)...)
	_, err := store.UploadFile(context.Background(), fileHeader(t, "big.png", big), "recipes")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "size", verr.Field)

	_, statErr := os.Stat(filepath.Join(root, "recipes"))
	assert.True(t, os.IsNotExist(statErr), "nothing may be written for a rejected upload")
}

func TestLocalStorage_RejectsUnsupportedType(t *testing.T) {
	store := NewLocalStorage(t.TempDir(), "")

	_, err := store.UploadFile(context.Background(), fileHeader(t, "notes.png", []byte("just some text")), "recipes")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Field)
}

func TestLocalStorage_RejectsEscapingDir(t *testing.T) {
	store := NewLocalStorage(t.TempDir(), "")

	_, err := store.UploadFile(context.Background(), fileHeader(t, "a.png", pngHeader), "../outside")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)

	assert.Error(t, store.DeleteFile(context.Background(), "/etc/passwd"))
}

func TestGenerateFileName_FallsBackToDetectedExtension(t *testing.T) {
	mtype, err := ValidateImage(fileHeader(t, "photo", pngHeader))
	require.NoError(t, err)

	name := GenerateFileName("recipe", "photo", mtype, fixedTime)
	assert.True(t, strings.HasPrefix(name, "recipe-1700000000000-"), name)
	assert.True(t, strings.HasSuffix(name, ".png"), name)
}

type fakeObjectAPI struct {
	puts    map[string][]byte
	types   map[string]string
	deleted []string
}

func (f *fakeObjectAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts[*in.Key] = body
	f.types[*in.Key] = *in.ContentType
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestAwsS3_UploadAndDelete(t *testing.T) {
	api := &fakeObjectAPI{puts: map[string][]byte{}, types: map[string]string{}}
	store := NewAwsS3WithClient(api, "dishes", "eu-west-1")

	key, err := store.UploadFile(context.Background(), fileHeader(t, "soup.png", pngHeader), "recipes")
	require.NoError(t, err)

	assert.Equal(t, pngHeader, api.puts[key])
	assert.Equal(t, "image/png", api.types[key])
	assert.Equal(t, "https://dishes.s3.eu-west-1.amazonaws.com/"+key, store.PublicURL(key))

	require.NoError(t, store.DeleteFile(context.Background(), key))
	assert.Equal(t, []string{key}, api.deleted)
}

func TestAwsS3_RejectsBeforeUpload(t *testing.T) {
	api := &fakeObjectAPI{puts: map[string][]byte{}, types: map[string]string{}}
	store := NewAwsS3WithClient(api, "dishes", "eu-west-1")

	_, err := store.UploadFile(context.Background(), fileHeader(t, "a.txt", []byte("plain")), "recipes")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, api.puts)
}
