// Package api wires each service façade: echo instance, global
// middleware, route registration, and the dependency graph behind the
// handlers. One constructor per deployable.
package api

import (
	"context"
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/microblog/platform/internal/api/handler"
	"github.com/microblog/platform/internal/api/middleware"
	"github.com/microblog/platform/internal/core/ports"
	"github.com/microblog/platform/internal/core/service"
	"github.com/microblog/platform/internal/health"
	"github.com/microblog/platform/internal/infrastructure/config"
	mongodb "github.com/microblog/platform/internal/infrastructure/db/mongo"
	redisdb "github.com/microblog/platform/internal/infrastructure/db/redis"
	"github.com/microblog/platform/internal/security"
)

// newEcho builds the echo instance every façade shares: panic recovery,
// request ids, request logging, prometheus middleware with a /metrics
// endpoint, the domain error handler, and the request validator.
func newEcho(serviceName string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware(promSubsystem(serviceName)))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// promSubsystem turns a service name like "auth-service" into a valid
// prometheus subsystem identifier.
func promSubsystem(serviceName string) string {
	return strings.ReplaceAll(serviceName, "-", "_")
}

// newVerifier picks the token verification strategy from configuration.
// Local and remote verifiers are interchangeable behind ports.TokenVerifier.
func newVerifier(cfg *config.Config, tokens *security.TokenAuthority) ports.TokenVerifier {
	if cfg.VerifyMode == "remote" {
		return middleware.NewRemoteVerifier(cfg.AuthServiceBase, cfg.VerifyTimeout)
	}
	return middleware.NewLocalVerifier(tokens)
}

// storageProbe adapts a Mongo ping into the prober's storage check.
func storageProbe(db *mongo.Database) health.StorageProbe {
	return func(ctx context.Context) error {
		return db.Client().Ping(ctx, nil)
	}
}

// NewAuthRouter builds the auth-service façade: signup, login, delegated
// token verification, and a health endpoint with no upstream dependencies.
func NewAuthRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("auth-service", log)

	tokens := security.NewTokenAuthority(cfg.ResolveSecret(log), cfg.Algorithm, cfg.TokenTTL())
	hasher := security.NewHasher(cfg.BcryptCost)

	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, hasher, tokens)
	authHandler := handler.NewAuthHandler(authService)

	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/verify", authHandler.Verify)

	prober := health.NewProber("auth-service", cfg.ProbeTimeout, nil).
		WithStorage("mongodb", storageProbe(db))
	health.NewHandler(prober).Register(e)

	return e
}

// NewUserRouter builds the user-service façade: profile CRUD behind the
// auth middleware, health probing auth-service.
func NewUserRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("user-service", log)

	tokens := security.NewTokenAuthority(cfg.ResolveSecret(log), cfg.Algorithm, cfg.TokenTTL())
	auth := middleware.Auth(newVerifier(cfg, tokens))

	profileRepo := mongodb.NewProfileRepository(db)
	profileService := service.NewProfileService(profileRepo)
	profileHandler := handler.NewProfileHandler(profileService)

	g := e.Group("/api/v1")
	g.GET("/profiles", profileHandler.List)
	g.GET("/profiles/:id", profileHandler.Get)
	g.POST("/profiles", profileHandler.Create, auth)
	g.PATCH("/profiles/:id", profileHandler.Update, auth)
	g.DELETE("/profiles/:id", profileHandler.Delete, auth)

	prober := health.NewProber("user-service", cfg.ProbeTimeout, []health.Dependency{
		{Name: "auth-service", BaseURL: cfg.AuthServiceBase},
	}).WithStorage("mongodb", storageProbe(db))
	health.NewHandler(prober).Register(e)

	return e
}

// NewPostRouter builds the post-service façade: post CRUD with a Redis
// cache-aside read path, health probing auth-service and user-service.
func NewPostRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("post-service", log)

	tokens := security.NewTokenAuthority(cfg.ResolveSecret(log), cfg.Algorithm, cfg.TokenTTL())
	auth := middleware.Auth(newVerifier(cfg, tokens))

	postRepo := mongodb.NewPostRepository(db)
	var cache ports.Cache
	if rdb != nil {
		cache = redisdb.NewJSONCache(rdb)
	}
	postService := service.NewPostService(postRepo, cache, cfg.CacheTTL, log)
	postHandler := handler.NewPostHandler(postService)

	g := e.Group("/api/v1")
	g.GET("/posts", postHandler.List)
	g.GET("/posts/:id", postHandler.Get)
	g.POST("/posts", postHandler.Create, auth)
	g.PATCH("/posts/:id", postHandler.Update, auth)
	g.DELETE("/posts/:id", postHandler.Delete, auth)

	prober := health.NewProber("post-service", cfg.ProbeTimeout, []health.Dependency{
		{Name: "auth-service", BaseURL: cfg.AuthServiceBase},
		{Name: "user-service", BaseURL: cfg.UserServiceBase},
	}).WithStorage("mongodb", storageProbe(db))
	health.NewHandler(prober).Register(e)

	return e
}

// NewCommentRouter builds the comment-service façade: comment CRUD,
// health probing user-service and post-service.
func NewCommentRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("comment-service", log)

	tokens := security.NewTokenAuthority(cfg.ResolveSecret(log), cfg.Algorithm, cfg.TokenTTL())
	auth := middleware.Auth(newVerifier(cfg, tokens))

	commentRepo := mongodb.NewCommentRepository(db)
	commentService := service.NewCommentService(commentRepo)
	commentHandler := handler.NewCommentHandler(commentService)

	g := e.Group("/api/v1")
	g.GET("/comments/:id", commentHandler.Get)
	g.GET("/posts/:post_id/comments", commentHandler.ListByPost)
	g.POST("/comments", commentHandler.Create, auth)
	g.PATCH("/comments/:id", commentHandler.Update, auth)
	g.DELETE("/comments/:id", commentHandler.Delete, auth)

	prober := health.NewProber("comment-service", cfg.ProbeTimeout, []health.Dependency{
		{Name: "user-service", BaseURL: cfg.UserServiceBase},
		{Name: "post-service", BaseURL: cfg.PostServiceBase},
	}).WithStorage("mongodb", storageProbe(db))
	health.NewHandler(prober).Register(e)

	return e
}
