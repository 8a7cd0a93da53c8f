package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tcwang/elemental-cards/internal/constants"
	"github.com/tcwang/elemental-cards/internal/logging"
)

// ImportCards bulk-loads cards from a text/plain body in the
// delimited exchange format. Malformed lines are skipped and listed
// in the response; well-formed lines are applied with upsert
// semantics, so re-importing a file never duplicates cards.
func (h *Handler) ImportCards(c *gin.Context) {
	report, err := h.cards.Import(c.Request.Body)
	if err != nil {
		logging.Error("card import failed", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedImportCards})
		return
	}
	if len(report.Skipped) > 0 {
		logging.Warn("card import skipped malformed lines", logging.Fields{"skipped": len(report.Skipped)})
	}
	c.JSON(http.StatusOK, report)
}

// ExportCards streams the whole collection as text/plain, one card
// per line.
func (h *Handler) ExportCards(c *gin.Context) {
	c.Header(constants.HeaderContentType, constants.ContentTypeText)
	c.Status(http.StatusOK)
	if err := h.cards.Export(c.Writer); err != nil {
		// Headers are out; nothing left to do but log.
		logging.Error("card export failed", err, nil)
	}
}
