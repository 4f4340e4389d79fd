package filestorage

import (
	"fmt"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

var allowedImageTypes = []string{"image/jpeg", "image/png"}

// ValidateImage checks the size limit and sniffs the content of an upload.
// The client supplied Content-Type is not trusted.
func ValidateImage(fileHeader *multipart.FileHeader, maxSize int64) error {
	if fileHeader == nil {
		return nil
	}
	if maxSize > 0 && fileHeader.Size > maxSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, fileHeader.Size, maxSize)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return fmt.Errorf("failed to detect file type: %w", err)
	}
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		return fmt.Errorf("%w: got %s", ErrInvalidImage, mtype.String())
	}
	return nil
}

// Extension returns the canonical extension for a sniffed image, e.g. ".png".
func Extension(fileHeader *multipart.FileHeader) string {
	file, err := fileHeader.Open()
	if err != nil {
		return ""
	}
	defer file.Close()
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return ""
	}
	return mtype.Extension()
}
