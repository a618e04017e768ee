package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartPhoto(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestPhotoUpload_Success(t *testing.T) {
	dir := t.TempDir()
	e := echo.New()
	h := NewPhotoHandler(dir)

	body, contentType := multipartPhoto(t, "ali.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/photos", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Upload(e.NewContext(req, rec)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		PhotoPath string `json:"photo_path"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	saved, err := os.ReadFile(resp.PhotoPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), saved)
}

func TestPhotoUpload_RejectsUnsupportedType(t *testing.T) {
	e := echo.New()
	h := NewPhotoHandler(t.TempDir())

	body, contentType := multipartPhoto(t, "resume.pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/photos", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Upload(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNSUPPORTED_PHOTO_TYPE")
}

func TestPhotoUpload_MissingFile(t *testing.T) {
	e := echo.New()
	h := NewPhotoHandler(t.TempDir())

	req := httptest.NewRequest(http.MethodPost, "/photos", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Upload(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
