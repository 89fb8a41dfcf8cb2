// Package api defines the shared request/response types for the HTTP API.
package api

// ErrorResponse is the common error envelope returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgement response.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest represents the request body for the /signup endpoint.
// It uses Gin's binding tags for validation (required, email format, password length).
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for the /login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResolveResponse is returned by the /api/resolve endpoint.
type ResolveResponse struct {
	Query  string `json:"query"`
	Symbol string `json:"symbol"`
}

// QuoteRequest represents the request body for the /api/quote endpoint.
// Symbol is free text: a ticker, a company name fragment, or crypto shorthand.
type QuoteRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}

// QuoteResponse is the live quote payload returned by /api/quote.
type QuoteResponse struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	DayHigh       float64 `json:"day_high"`
	DayLow        float64 `json:"day_low"`
	Volume        int64   `json:"volume"`
	PreviousClose float64 `json:"previous_close"`
	Currency      string  `json:"currency"`
}

// SymbolItem is one entry of the /api/symbols listing.
type SymbolItem struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
