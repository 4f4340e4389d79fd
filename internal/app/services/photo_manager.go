package services

import (
	"fmt"
	"mime/multipart"

	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/filestorage"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// PhotoManager validates uploads and keeps stored photos in step with the
// records that reference them.
type PhotoManager struct {
	storage filestorage.FileStorage
	maxSize int64
}

// NewPhotoManager creates a PhotoManager accepting images up to maxSize bytes
func NewPhotoManager(storage filestorage.FileStorage, maxSize int64) *PhotoManager {
	return &PhotoManager{storage: storage, maxSize: maxSize}
}

// PhotoChange is the outcome of resolving a photo update. Apply Commit once
// the record is persisted, Rollback when persisting failed.
type PhotoChange struct {
	Value *string

	changed bool
	saved   *string
	stale   *string
}

// Changed reports whether the request touched the photo at all
func (c *PhotoChange) Changed() bool {
	return c != nil && c.changed
}

// PhotoInput carries the photo fields of a request
type PhotoInput struct {
	File   *multipart.FileHeader
	URL    *string
	Remove bool
}

// Resolve computes the new photo column for a record currently holding
// current. A new upload wins over remove, which wins over a URL.
func (m *PhotoManager) Resolve(current *string, in PhotoInput, dir string) (*PhotoChange, error) {
	switch {
	case in.File != nil:
		if err := filestorage.ValidateImage(in.File, m.maxSize); err != nil {
			return nil, err
		}
		url, err := m.storage.SaveFileWithPath(in.File, dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFileStorage, err)
		}
		return &PhotoChange{Value: &url, changed: true, saved: &url, stale: current}, nil
	case in.Remove:
		return &PhotoChange{Value: nil, changed: true, stale: current}, nil
	case in.URL != nil:
		return &PhotoChange{Value: optional(in.URL), changed: true}, nil
	default:
		return &PhotoChange{Value: current}, nil
	}
}

// Commit drops the photo the record no longer references
func (m *PhotoManager) Commit(c *PhotoChange) {
	if c != nil {
		m.Delete(c.stale)
	}
}

// Rollback drops a photo uploaded for a record that was never persisted
func (m *PhotoManager) Rollback(c *PhotoChange) {
	if c != nil {
		m.Delete(c.saved)
	}
}

// Delete removes a stored photo. URLs outside our upload area are left alone.
func (m *PhotoManager) Delete(url *string) {
	if url == nil || *url == "" || !m.storage.Owns(*url) {
		return
	}
	if err := m.storage.DeleteFile(*url); err != nil {
		logger.Warn().Err(err).Str("url", *url).Msg("Failed to delete stored photo")
	}
}
