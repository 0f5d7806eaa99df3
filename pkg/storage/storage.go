package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"

	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

const (
	maxImageDimension = 1200
	jpegQuality       = 80
)

var documentExtensions = map[string]bool{
	"pdf":  true,
	"doc":  true,
	"docx": true,
}

// LocalStore persists uploaded files on the local filesystem under a base
// directory. Images are downscaled and re-encoded as JPEG before saving;
// documents are stored as-is.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create upload directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// SaveImage compresses and stores an image upload, returning the relative
// path of the stored file. Non-image payloads are rejected.
func (s *LocalStore) SaveImage(data []byte, originalName string) (string, error) {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperror.BadRequest("File must be an image")
	}

	compressed, err := compressImage(data, maxImageDimension, jpegQuality)
	if err != nil {
		logger.Log.Warn("image compression failed, storing original", "error", err)
		compressed = data
	}

	filename := fmt.Sprintf("%d_%s.jpg", time.Now().UnixNano(), sanitizeFilename(originalName))
	if err := s.write(filename, compressed); err != nil {
		return "", err
	}
	return filename, nil
}

// SaveDocument stores a document upload (pdf, doc, docx) unchanged, returning
// the relative path of the stored file.
func (s *LocalStore) SaveDocument(data []byte, originalName string) (string, error) {
	ext := strings.ToLower(getExtension(originalName))
	if !documentExtensions[ext] {
		return "", apperror.BadRequest("File must be a pdf, doc or docx document")
	}

	filename := fmt.Sprintf("%d_%s.%s", time.Now().UnixNano(), sanitizeFilename(originalName), ext)
	if err := s.write(filename, data); err != nil {
		return "", err
	}
	return filename, nil
}

// Delete removes a stored file. Missing files are not an error; erasure is
// idempotent.
func (s *LocalStore) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	// Reject path traversal; stored paths are always flat filenames.
	clean := filepath.Base(relPath)
	err := os.Remove(filepath.Join(s.baseDir, clean))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStore) write(filename string, data []byte) error {
	path := filepath.Join(s.baseDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("storage: failed to write file: %w", err)
	}
	return nil
}

// compressImage downscales an image to the specified max dimension and
// re-encodes it as JPEG at the given quality.
func compressImage(data []byte, maxDimension int, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Calculate new dimensions maintaining aspect ratio
	newWidth, newHeight := width, height
	if width > height {
		if width > maxDimension {
			newWidth = maxDimension
			newHeight = int(float64(height) * float64(maxDimension) / float64(width))
		}
	} else {
		if height > maxDimension {
			newHeight = maxDimension
			newWidth = int(float64(width) * float64(maxDimension) / float64(height))
		}
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// getExtension returns the file extension from a filename
func getExtension(filename string) string {
	parts := strings.Split(filename, ".")
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}
	return ""
}

// sanitizeFilename replaces spaces with underscores and strips everything but
// ASCII alphanumerics, underscores and dashes.
func sanitizeFilename(filename string) string {
	ext := getExtension(filename)
	baseName := strings.TrimSuffix(filename, "."+ext)
	baseName = strings.ReplaceAll(baseName, " ", "_")

	var result strings.Builder
	for _, r := range baseName {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			result.WriteRune(r)
		}
	}
	if result.Len() == 0 {
		return "file"
	}
	return result.String()
}
