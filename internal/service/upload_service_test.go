package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mechshare/internal/apperr"
	"mechshare/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadService(t *testing.T) *UploadService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Upload.Dir = t.TempDir()
	cfg.Upload.PublicPrefix = "/uploads"
	cfg.Upload.MaxSizeBytes = 1024
	cfg.Upload.AllowedTypes = []string{"image/png", "application/pdf"}
	return NewUploadService(cfg)
}

func buildFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	h["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadStore_Success(t *testing.T) {
	svc := newUploadService(t)
	fh := buildFileHeader(t, "図解.png", "image/png", []byte("png-bytes"))

	resp, err := svc.Store(fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(resp.URL, ".png"))
	assert.Equal(t, 0, resp.Duration)
	assert.Equal(t, "図解.png", resp.OriginalName)
	assert.Equal(t, int64(len("png-bytes")), resp.Size)
	assert.Equal(t, "image/png", resp.Mimetype)

	// 落盘文件内容与上传一致
	stored := filepath.Join(svc.cfg.Upload.Dir, strings.TrimPrefix(resp.URL, "/uploads/"))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestUploadStore_UnsupportedType(t *testing.T) {
	svc := newUploadService(t)
	fh := buildFileHeader(t, "a.exe", "application/x-msdownload", []byte("bin"))

	_, err := svc.Store(fh)
	assert.ErrorIs(t, err, apperr.ErrUnsupportedMediaType)
}

func TestUploadStore_TooLarge(t *testing.T) {
	svc := newUploadService(t)
	fh := buildFileHeader(t, "big.png", "image/png", bytes.Repeat([]byte("a"), 2048))

	_, err := svc.Store(fh)
	assert.ErrorIs(t, err, apperr.ErrTooLarge)
}
