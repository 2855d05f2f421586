package utils

import (
	"encoding/hex"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// AllowedImageName reports whether the filename carries an accepted image
// extension (png, jpg, jpeg, gif, webp), case-insensitively.
func AllowedImageName(filename string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename strips path components from the supplied name, replaces
// every character outside [a-zA-Z0-9._-] with an underscore, and prepends an
// 8-hex-character random prefix so concurrent uploads of identically named
// files never collide.
func SanitizeFilename(filename string) string {
	base := filepath.Base(filename)
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	u := uuid.New()
	return hex.EncodeToString(u[:4]) + "_" + base
}

// SaveImage stores an uploaded image under dir (created on demand) and
// returns the stored filename. Callers must have validated the extension via
// AllowedImageName first.
func SaveImage(fh *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := SanitizeFilename(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}
