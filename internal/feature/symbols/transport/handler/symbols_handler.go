// Package handler provides the HTTP handlers for the symbol listing.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"finos_backend/internal/api"
	"finos_backend/internal/feature/resolver/domain/entity"
)

// SymbolsUsecase defines the listing operation required by the handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type SymbolsUsecase interface {
	ListSymbols(ctx context.Context) ([]entity.Instrument, error)
}

// SymbolsHandler handles GET /api/symbols.
type SymbolsHandler struct {
	uc SymbolsUsecase
}

// NewSymbolsHandler creates a new SymbolsHandler.
func NewSymbolsHandler(uc SymbolsUsecase) *SymbolsHandler {
	return &SymbolsHandler{uc: uc}
}

// List returns the persisted instrument listing as JSON.
func (h *SymbolsHandler) List(c *gin.Context) {
	instruments, err := h.uc.ListSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list symbols"})
		return
	}
	out := make([]api.SymbolItem, 0, len(instruments))
	for _, ins := range instruments {
		out = append(out, api.SymbolItem{Symbol: ins.Symbol, Name: ins.Name})
	}
	c.JSON(http.StatusOK, out)
}
