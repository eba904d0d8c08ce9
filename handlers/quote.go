package handlers

import (
	"errors"
	"net/http"

	"homely/models"
	quoteSvc "homely/services/quote"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler serves price quoting endpoints.
type QuoteHandler struct {
	QuoteSvc quoteSvc.QuoteService
	Logger   *zap.Logger
}

func NewQuoteHandler(svc quoteSvc.QuoteService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{QuoteSvc: svc, Logger: logger}
}

// CreateQuote handles POST /api/quotes.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.QuoteSvc.Quote(c.Request.Context(), req)
	if err != nil {
		var qe *quoteSvc.QuoteError
		if errors.As(err, &qe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": qe.Message})
			return
		}
		h.Logger.Error("CreateQuote: failed to compute quote", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute quote", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
