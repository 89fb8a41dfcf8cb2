package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"finos_backend/internal/app/router"
	authadapters "finos_backend/internal/feature/auth/adapters"
	authhandler "finos_backend/internal/feature/auth/transport/handler"
	authusecase "finos_backend/internal/feature/auth/usecase"
	"finos_backend/internal/feature/chat/adapters/gemini"
	chathandler "finos_backend/internal/feature/chat/transport/handler"
	chatusecase "finos_backend/internal/feature/chat/usecase"
	contextusecase "finos_backend/internal/feature/marketcontext/usecase"
	"finos_backend/internal/feature/quote/adapters/yahoo"
	quotehandler "finos_backend/internal/feature/quote/transport/handler"
	quoteusecase "finos_backend/internal/feature/quote/usecase"
	resolveradapters "finos_backend/internal/feature/resolver/adapters"
	"finos_backend/internal/feature/resolver/adapters/nse"
	resolverhandler "finos_backend/internal/feature/resolver/transport/handler"
	resolverusecase "finos_backend/internal/feature/resolver/usecase"
	symbolshandler "finos_backend/internal/feature/symbols/transport/handler"
	symbolsusecase "finos_backend/internal/feature/symbols/usecase"
	"finos_backend/internal/platform/cache"
	platformdb "finos_backend/internal/platform/db"
	platformhttp "finos_backend/internal/platform/http"
	jwtmw "finos_backend/internal/platform/jwt"
	platformredis "finos_backend/internal/platform/redis"
	"finos_backend/internal/shared/ratelimiter"
)

func main() {
	// .env is optional; deployed environments set real variables.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] no .env file loaded:", err)
	}

	ctx := context.Background()

	db := platformdb.OpenDB()

	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// External market data providers.
	yahooCfg := yahoo.LoadConfig()
	yahooClient := yahoo.NewClient(yahooCfg, platformhttp.NewHTTPClient(yahooCfg.Timeout))
	nseCfg := nse.LoadConfig()
	nseClient := nse.NewClient(nseCfg, platformhttp.NewHTTPClient(nseCfg.Timeout))

	// Symbol resolution over the NSE listing with DB fallback.
	instrumentRepo := resolveradapters.NewInstrumentRepository(db)
	listingSource := resolveradapters.NewListingSource(nseClient, instrumentRepo)
	resolverCfg := resolverusecase.LoadConfig()
	store := resolverusecase.NewStore(listingSource, resolverCfg.RefreshTTL)
	go store.RefreshEvery(ctx, resolverCfg.RefreshTTL)
	resolverUC := resolverusecase.NewResolverUsecase(store, yahooClient, resolverCfg)

	quoteUC := quoteusecase.NewQuoteUsecase(yahooClient, resolverUC)
	symbolsUC := symbolsusecase.NewSymbolsUsecase(instrumentRepo)

	// Market context for the chat prompt, cached in Redis.
	limiter := ratelimiter.NewRateLimiter(8, time.Minute)
	contextBuilder := contextusecase.NewContextBuilder(yahooClient, limiter)
	contextSource := cache.NewCachingContextSource(rdb, 5*time.Minute, contextBuilder, "marketcontext")

	geminiClient, err := gemini.NewClient(ctx)
	if err != nil {
		log.Fatal("failed to init gemini client:", err)
	}
	chatUC := chatusecase.NewChatUsecase(geminiClient, contextSource)

	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	userRepo := authadapters.NewUserRepository(db)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)

	authH := authhandler.NewAuthHandler(authUC)
	resolveH := resolverhandler.NewResolveHandler(resolverUC)
	quoteH := quotehandler.NewQuoteHandler(quoteUC)
	symbolsH := symbolshandler.NewSymbolsHandler(symbolsUC)
	chatH := chathandler.NewChatHandler(chatUC)

	r := router.NewRouter(authH, resolveH, quoteH, symbolsH, chatH)

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
