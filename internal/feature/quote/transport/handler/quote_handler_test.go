package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"finos_backend/internal/feature/quote/domain/entity"
	"finos_backend/internal/feature/quote/transport/handler"
)

// mockQuoteUsecase is a mock implementation of the QuoteUsecase interface.
type mockQuoteUsecase struct {
	getQuoteFn func(ctx context.Context, rawQuery string) (*entity.Quote, error)
}

func (m *mockQuoteUsecase) GetQuote(ctx context.Context, rawQuery string) (*entity.Quote, error) {
	return m.getQuoteFn(ctx, rawQuery)
}

// TestQuoteHandler_GetQuote tests the HTTP request/response handling of GetQuote.
func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		getQuoteFn     func(ctx context.Context, rawQuery string) (*entity.Quote, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: free text resolves and quotes",
			body: `{"symbol": "reliance"}`,
			getQuoteFn: func(ctx context.Context, rawQuery string) (*entity.Quote, error) {
				assert.Equal(t, "reliance", rawQuery)
				return &entity.Quote{
					Symbol:        "RELIANCE.NS",
					Price:         2950.5,
					PreviousClose: 2900,
					DayHigh:       2960,
					DayLow:        2890,
					Volume:        5000000,
					Currency:      "INR",
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"symbol": "RELIANCE.NS",
				"price": 2950.5,
				"change": 50.5,
				"change_percent": 1.7413793103448276,
				"day_high": 2960,
				"day_low": 2890,
				"volume": 5000000,
				"previous_close": 2900,
				"currency": "INR"
			}`,
		},
		{
			name:           "error: missing symbol field",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"symbol is required"}`,
		},
		{
			name: "error: provider has no such instrument",
			body: `{"symbol": "ZZZZ"}`,
			getQuoteFn: func(ctx context.Context, rawQuery string) (*entity.Quote, error) {
				return nil, errors.New("no price data for ZZZZ.NS")
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"stock not found: no price data for ZZZZ.NS"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewQuoteHandler(&mockQuoteUsecase{getQuoteFn: tt.getQuoteFn})

			router := gin.New()
			router.POST("/api/quote", h.GetQuote)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
