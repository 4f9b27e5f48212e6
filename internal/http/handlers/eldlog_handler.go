// README: ELD log PDF download handler.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"eldrouter/internal/eldlog"
)

type EldLogHandler struct{}

func NewEldLogHandler() *EldLogHandler {
	return &EldLogHandler{}
}

type pdfRequest struct {
	Date      string `json:"date"`
	Day       int    `json:"day"`
	PdfBase64 string `json:"pdf_base64"`
}

// Download handles POST /api/logs/pdf. The page posts the base64 payload it
// already holds; nothing is persisted server-side.
func (h *EldLogHandler) Download(c *gin.Context) {
	var req pdfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	data, err := eldlog.DecodePDF(req.PdfBase64)
	if err != nil {
		if errors.Is(err, eldlog.ErrNoPDF) {
			writeError(c, http.StatusBadRequest, "PDF data not available for this log")
			return
		}
		writeError(c, http.StatusBadRequest, "invalid pdf data")
		return
	}

	filename := eldlog.Filename(req.Date, req.Day)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
