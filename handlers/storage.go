package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	storageSvc "roamly/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Storage is assigned during startup wiring. It stays nil when Cloudinary
// credentials are not configured; the handlers then answer 503.
var Storage storageSvc.StorageService

const attachmentFolder = "bookings/attachments"

// UploadAttachmentHandler accepts a multipart upload and stores it as a
// booking attachment. The returned publicId goes into the booking's
// attachments list client-side.
func UploadAttachmentHandler(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "attachment storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided"})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		getLogger(c).Error("failed to save upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := Storage.UploadFile(c, tempFilePath, attachmentFolder)
	if err != nil {
		getLogger(c).Error("failed to upload attachment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"publicId": publicID})
}

// AttachmentURLHandler resolves a stored attachment to a signed, short-lived
// download URL.
func AttachmentURLHandler(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "attachment storage not configured"})
		return
	}

	publicID := c.Param("publicId")
	resourceType := c.DefaultQuery("type", "image")

	expiry := 15 * time.Minute
	if expStr := c.Query("expires"); expStr != "" {
		if exp, err := time.ParseDuration(expStr); err == nil && exp > 0 && exp <= time.Hour {
			expiry = exp
		}
	}

	url, err := Storage.GetSecureDownloadURL(c, resourceType, publicID, expiry)
	if err != nil {
		getLogger(c).Error("failed to build download URL", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "expiresIn": expiry.Seconds()})
}
