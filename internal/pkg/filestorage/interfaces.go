package filestorage

import (
	"errors"
	"mime/multipart"
)

var (
	ErrInvalidImage = errors.New("file must be a jpeg or png image")
	ErrFileTooLarge = errors.New("file exceeds the allowed size")
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores the upload under subPath and returns its public URL
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes the file behind a URL returned by SaveFileWithPath.
	// URLs pointing outside the storage area are ignored.
	DeleteFile(fileURL string) error

	// Owns reports whether fileURL points into this storage
	Owns(fileURL string) bool
}
