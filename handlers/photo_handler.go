package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// maxPhotoBytes caps uploaded photo size at 5 MB.
const maxPhotoBytes = 5 << 20

type PhotoHandler struct {
	photoDir string
}

func NewPhotoHandler(photoDir string) *PhotoHandler {
	return &PhotoHandler{photoDir: photoDir}
}

// Upload handles POST /photos (multipart field "photo"). The stored
// path is returned and used as the photo reference when registering.
func (h *PhotoHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "MISSING_PHOTO"})
	}
	if fh.Size > maxPhotoBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "PHOTO_TOO_LARGE"})
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg":
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "UNSUPPORTED_PHOTO_TYPE"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PHOTO"})
	}
	defer src.Close()

	name := fmt.Sprintf("photo_%d%s", time.Now().UnixNano(), ext)
	path := filepath.Join(h.photoDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "PHOTO_SAVE_FAILED"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "PHOTO_SAVE_FAILED"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"photo_path": path})
}
