package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadURLPrefix is the public path under which stored images are served.
const UploadURLPrefix = "/static/uploads/"

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// AllowedImage reports whether the original filename carries an accepted
// image extension.
func AllowedImage(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// UniqueImageName derives a collision-free stored name from the original
// filename. Two uploads of the same file never share a name.
func UniqueImageName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.ReplaceAll(uuid.New().String(), "-", "") + ext
}

// SaveCourseImage writes an accepted upload into uploadDir and returns its
// public URL path. Disallowed extensions return "" with no write.
func SaveCourseImage(c *fiber.Ctx, file *multipart.FileHeader, uploadDir string) (string, error) {
	if file == nil || file.Filename == "" || !AllowedImage(file.Filename) {
		return "", nil
	}

	name := UniqueImageName(file.Filename)
	if err := c.SaveFile(file, filepath.Join(uploadDir, name)); err != nil {
		return "", err
	}
	return UploadURLPrefix + name, nil
}

// RemoveCourseImage deletes a stored image referenced by its public URL.
// Paths outside the upload directory and already-missing files are ignored.
func RemoveCourseImage(imageURL, uploadDir string) {
	if !strings.HasPrefix(imageURL, UploadURLPrefix) {
		return
	}
	name := filepath.Base(strings.TrimPrefix(imageURL, UploadURLPrefix))
	_ = os.Remove(filepath.Join(uploadDir, name))
}
