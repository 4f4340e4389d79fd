package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// URLPrefix is the route the storage directory is served under
const URLPrefix = "/uploads"

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory on disk
	baseURL  string // public URL of basePath, e.g. http://host/uploads
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
// publicURL is the server's external address; files are exposed under
// publicURL + URLPrefix.
func NewLocalStorage(basePath, publicURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(publicURL, "/") + URLPrefix,
	}, nil
}

// BasePath is the directory served under URLPrefix
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// SaveFileWithPath saves a file to a specified subdirectory
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := filepath.Join(ls.basePath, filepath.FromSlash(subPath))
	if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	ext := Extension(fileHeader)
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(fileHeader.Filename))
	}
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	fileURL := ls.baseURL + "/" + path.Join(subPath, uniqueFilename)
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Str("url", fileURL).Msg("File saved successfully")
	return fileURL, nil
}

// RelativePath maps a URL issued by this storage back to its path below
// basePath. It returns false for foreign URLs and for paths escaping basePath.
func (ls *LocalStorage) RelativePath(fileURL string) (string, bool) {
	if fileURL == "" {
		return "", false
	}

	var rest string
	if r, ok := strings.CutPrefix(fileURL, ls.baseURL+"/"); ok {
		rest = r
	} else {
		u, err := url.Parse(fileURL)
		if err != nil || (u.Host != "" && u.Host != ls.host()) {
			return "", false
		}
		r, ok := strings.CutPrefix(u.Path, URLPrefix+"/")
		if !ok {
			return "", false
		}
		rest = r
	}

	clean := path.Clean("/" + rest)[1:]
	if clean == "" || clean != rest {
		return "", false
	}
	return clean, true
}

func (ls *LocalStorage) host() string {
	u, err := url.Parse(ls.baseURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// Owns reports whether fileURL points into this storage
func (ls *LocalStorage) Owns(fileURL string) bool {
	_, ok := ls.RelativePath(fileURL)
	return ok
}

// DeleteFile removes a stored file. Deleting a missing file or a URL outside
// the storage is not an error.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	rel, ok := ls.RelativePath(fileURL)
	if !ok {
		if fileURL != "" {
			logger.Debug().Str("url", fileURL).Msg("Skipping delete of file outside storage")
		}
		return nil
	}

	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(rel))

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}
