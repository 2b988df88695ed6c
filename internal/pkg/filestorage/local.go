package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/doruk/portfolio/internal/pkg/logger"
)

// LocalStorage saves uploaded files on the local filesystem under a single
// base directory
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath and ensures the
// known subdirectories exist
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	for _, sub := range []string{ProjectImages, EducationIcons} {
		dir := filepath.Join(basePath, sub)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}
	logger.Info().Str("path", basePath).Msg("Local storage directories ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveFile stores an uploaded file under subPath with a generated name.
// The name is a fresh uuid plus the original extension, so a re-upload of
// the same source file never collides with an earlier one.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil || fileHeader.Filename == "" {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, subPath, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		// Do not leave a truncated file behind.
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("saved_as", filename).
		Str("dir", subPath).
		Msg("File saved")
	return filename, nil
}

// DeleteFile removes a stored file. Missing files are treated as already
// deleted.
func (ls *LocalStorage) DeleteFile(subPath, filename string) error {
	if filename == "" {
		return nil
	}

	// The stored name is generated by SaveFile, but guard against a path
	// smuggled in through the database anyway.
	if filepath.Base(filename) != filename {
		return fmt.Errorf("invalid stored filename: %s", filename)
	}

	physicalPath := filepath.Join(ls.basePath, subPath, filename)
	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}
