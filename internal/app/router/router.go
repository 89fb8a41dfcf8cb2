// Package router wires the HTTP handlers onto the Gin engine.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "finos_backend/internal/feature/auth/transport/handler"
	chathandler "finos_backend/internal/feature/chat/transport/handler"
	quotehandler "finos_backend/internal/feature/quote/transport/handler"
	resolverhandler "finos_backend/internal/feature/resolver/transport/handler"
	symbolshandler "finos_backend/internal/feature/symbols/transport/handler"
	platformhandler "finos_backend/internal/platform/http/handler"
	jwtmw "finos_backend/internal/platform/jwt"
)

// NewRouter builds the full route table. Market data endpoints are
// public; the chat endpoint requires a valid JWT.
func NewRouter(
	auth *authhandler.AuthHandler,
	resolve *resolverhandler.ResolveHandler,
	quote *quotehandler.QuoteHandler,
	symbols *symbolshandler.SymbolsHandler,
	chat *chathandler.ChatHandler,
) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	r.GET("/api/resolve", resolve.Resolve)
	r.POST("/api/quote", quote.GetQuote)
	r.GET("/api/symbols", symbols.List)

	protected := r.Group("/api")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.POST("/chat", chat.Chat)
	}

	return r
}
