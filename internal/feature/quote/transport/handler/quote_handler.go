// Package handler provides the HTTP handlers for the quote feature.
package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"finos_backend/internal/api"
	"finos_backend/internal/feature/quote/domain/entity"
)

// QuoteUsecase defines the quote retrieval usecase interface.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type QuoteUsecase interface {
	GetQuote(ctx context.Context, rawQuery string) (*entity.Quote, error)
}

// QuoteHandler handles HTTP requests for live quotes.
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler creates a new QuoteHandler with the given usecase.
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuote resolves the free-text symbol in the request body and returns
// its live quote.
//
// Endpoint:
// POST /api/quote  {"symbol": "reliance"}
//
// Any provider failure is reported as 404: by design the resolver always
// guesses, and the provider is the authority on whether the instrument
// exists.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	var req api.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "symbol is required"})
		return
	}

	quote, err := h.uc.GetQuote(c.Request.Context(), req.Symbol)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: fmt.Sprintf("stock not found: %v", err)})
		return
	}

	c.JSON(http.StatusOK, api.QuoteResponse{
		Symbol:        quote.Symbol,
		Price:         quote.Price,
		Change:        quote.Change(),
		ChangePercent: quote.ChangePercent(),
		DayHigh:       quote.DayHigh,
		DayLow:        quote.DayLow,
		Volume:        quote.Volume,
		PreviousClose: quote.PreviousClose,
		Currency:      quote.Currency,
	})
}
