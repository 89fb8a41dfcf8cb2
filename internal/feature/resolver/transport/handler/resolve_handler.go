// Package handler provides the HTTP handlers for the resolver feature.
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"finos_backend/internal/api"
)

// ResolverUsecase defines the symbol resolution usecase interface.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ResolverUsecase interface {
	Resolve(ctx context.Context, query string) string
}

// ResolveHandler handles HTTP requests for symbol resolution.
type ResolveHandler struct {
	uc ResolverUsecase
}

// NewResolveHandler creates a new ResolveHandler with the given usecase.
func NewResolveHandler(uc ResolverUsecase) *ResolveHandler {
	return &ResolveHandler{uc: uc}
}

// Resolve maps a free-text query to a trading symbol.
//
// Endpoint:
// GET /api/resolve?q=reliance
//
// Emptiness validation happens here: the resolver itself assumes a
// non-empty query and always answers with a guess.
func (h *ResolveHandler) Resolve(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "query parameter q is required"})
		return
	}

	symbol := h.uc.Resolve(c.Request.Context(), q)
	c.JSON(http.StatusOK, api.ResolveResponse{Query: q, Symbol: symbol})
}
