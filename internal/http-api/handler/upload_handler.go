package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// allowedImageExts are the only file extensions the image upload accepts.
var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type UploadHandler struct {
	dir     string
	baseURL string
	maxSize int64
}

func NewUploadHandler(dir, baseURL string, maxSize int64) *UploadHandler {
	return &UploadHandler{dir: dir, baseURL: baseURL, maxSize: maxSize}
}

// UploadImage stores an uploaded image under a random name and returns its
// public URL.
// POST /api/upload/image
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file part"})
		return
	}

	if file.Size > h.maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file type not allowed"})
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// random name avoids collisions and path games in client filenames
	name := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, name)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": h.baseURL + "/api/upload/" + name})
}

// Serve returns a previously uploaded file.
// GET /api/upload/:filename
func (h *UploadHandler) Serve(c *gin.Context) {
	// Base strips any directory components from the parameter
	name := filepath.Base(c.Param("filename"))
	path := filepath.Join(h.dir, name)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.File(path)
}
