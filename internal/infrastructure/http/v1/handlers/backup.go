package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wakala/internal/core/apperror"
	"wakala/internal/domain/backup"
)

// maxArchiveSize caps how large a restore upload may be.
const maxArchiveSize = 64 << 20

// BackupHandler serves archive export and restore.
type BackupHandler struct {
	BaseHandler
	svc *backup.Service
}

// NewBackupHandler creates a backup handler.
func NewBackupHandler(svc *backup.Service) *BackupHandler {
	return &BackupHandler{svc: svc}
}

// Export streams a compressed archive of every collection.
func (h *BackupHandler) Export(c *gin.Context) {
	data, err := h.svc.Export(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	filename := fmt.Sprintf("wakala-backup-%s.bin", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// Restore reads an archive from the request body and writes its contents
// back through the repositories.
func (h *BackupHandler) Restore(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxArchiveSize))
	if err != nil {
		h.Error(c, apperror.NewValidation("could not read archive body"))
		return
	}
	if len(data) == 0 {
		h.Error(c, apperror.NewValidation("empty archive body"))
		return
	}

	if err := h.svc.Restore(c.Request.Context(), data); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "archive restored")
}
