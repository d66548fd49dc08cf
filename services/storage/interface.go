package storage

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores booking attachments and resolves delivery URLs.
type StorageService interface {
	// UploadFile uploads a local file into the destination folder and
	// returns its permanent public identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)

	// DeleteFile removes a stored file by its public identifier.
	DeleteFile(ctx context.Context, publicID string) error

	// GetDownloadURL returns a delivery URL for the stored file.
	GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error)

	// GetSecureDownloadURL returns a signed, short-lived URL.
	GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}
