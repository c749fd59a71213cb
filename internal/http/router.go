// Package httpapi wires the Gin transport to the CRUD services, the
// middleware stack and the route table. Everything is injected; the package
// holds no globals besides the Prometheus collectors it exposes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/platcon/platcon-api/internal/apperr"
	"github.com/platcon/platcon-api/internal/config"
	"github.com/platcon/platcon-api/internal/domain"
	"github.com/platcon/platcon-api/internal/http/handlers"
	"github.com/platcon/platcon-api/internal/http/middleware"
	"github.com/platcon/platcon-api/internal/repo"
	"github.com/platcon/platcon-api/internal/services"
)

// repoShim adapts the repo package's free functions for one entity to
// services.Repo.
type repoShim[T any, C any, U services.Changeset] struct {
	create   func(context.Context, *gorm.DB, C) (*T, error)
	list     func(context.Context, *gorm.DB) ([]T, error)
	listPage func(context.Context, *gorm.DB, int, int) ([]T, error)
	count    func(context.Context, *gorm.DB) (int64, error)
	get      func(context.Context, *gorm.DB, string) (*T, error)
	update   func(context.Context, *gorm.DB, string, U) error
	remove   func(context.Context, *gorm.DB, string) error
	stats    func(context.Context, *gorm.DB) (int64, *time.Time, error)
}

func (s repoShim[T, C, U]) Create(ctx context.Context, db *gorm.DB, in C) (*T, error) {
	return s.create(ctx, db, in)
}

func (s repoShim[T, C, U]) List(ctx context.Context, db *gorm.DB) ([]T, error) {
	return s.list(ctx, db)
}

func (s repoShim[T, C, U]) ListPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]T, error) {
	return s.listPage(ctx, db, offset, limit)
}

func (s repoShim[T, C, U]) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return s.count(ctx, db)
}

func (s repoShim[T, C, U]) Get(ctx context.Context, db *gorm.DB, id string) (*T, error) {
	return s.get(ctx, db, id)
}

func (s repoShim[T, C, U]) Update(ctx context.Context, db *gorm.DB, id string, in U) error {
	return s.update(ctx, db, id, in)
}

func (s repoShim[T, C, U]) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return s.remove(ctx, db, id)
}

func (s repoShim[T, C, U]) Stats(ctx context.Context, db *gorm.DB) (int64, *time.Time, error) {
	return s.stats(ctx, db)
}

var (
	userRepo = repoShim[domain.User, domain.CreateUserInput, domain.UpdateUserInput]{
		create: repo.CreateUser, list: repo.ListUsers, listPage: repo.ListUsersPage, count: repo.CountUsers,
		get: repo.GetUser, update: repo.UpdateUser, remove: repo.DeleteUser,
		stats: repo.Stats[domain.User],
	}
	memberRepo = repoShim[domain.Member, domain.CreateMemberInput, domain.UpdateMemberInput]{
		create: repo.CreateMember, list: repo.ListMembers, listPage: repo.ListMembersPage, count: repo.CountMembers,
		get: repo.GetMember, update: repo.UpdateMember, remove: repo.DeleteMember,
		stats: repo.MemberStats,
	}
	channelRepo = repoShim[domain.Channel, domain.CreateChannelInput, domain.UpdateChannelInput]{
		create: repo.CreateChannel, list: repo.ListChannels, listPage: repo.ListChannelsPage, count: repo.CountChannels,
		get: repo.GetChannel, update: repo.UpdateChannel, remove: repo.DeleteChannel,
		stats: repo.ChannelStats,
	}
	contentRepo = repoShim[domain.Content, domain.CreateContentInput, domain.UpdateContentInput]{
		create: repo.CreateContent, list: repo.ListContents, listPage: repo.ListContentsPage, count: repo.CountContents,
		get: repo.GetContent, update: repo.UpdateContent, remove: repo.DeleteContent,
		stats: repo.ContentStats,
	}
)

// idempotencyStore persists create outcomes in the idempotency table.
type idempotencyStore struct {
	db  *gorm.DB
	ttl time.Duration
}

func (s idempotencyStore) Lookup(ctx context.Context, resource, key string, now time.Time) (string, bool, error) {
	rec, err := repo.GetIdempotency(ctx, s.db, resource, key, now)
	if apperr.Is(err, apperr.KindNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.EntityID, true, nil
}

// Save records the outcome. A concurrent request that stored the same key
// first wins; that is not an error.
func (s idempotencyStore) Save(ctx context.Context, resource, key, entityID string, status int) error {
	_, err := repo.CreateIdempotency(ctx, s.db, resource, key, entityID, status, s.ttl)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil
	}
	return err
}

func (s idempotencyStore) exists(ctx context.Context, resource, key string, now time.Time) (bool, error) {
	_, found, err := s.Lookup(ctx, resource, key, now)
	return found, err
}

var corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}

var corsHeaders = []string{"Origin", "Content-Type", "Accept", "If-None-Match", middleware.HeaderIdempotencyKey}

// RegisterRoutes installs the middleware stack and every endpoint on r.
//
// Middleware order:
//  1. otelgin tracing
//  2. RequestID
//  3. access log (redacting or plain, per LOG_REDACT)
//  4. Recovery
//  5. body size cap
//  6. Metrics
//  7. gzip
//  8. IdempotencyValidator, so replays can skip the limiter
//  9. rate limiter
//  10. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	idem := idempotencyStore{db: db, ttl: cfg.IdempotencyTTL}

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	if cfg.LogRedact {
		r.Use(middleware.RedactingLogger(middleware.RedactOptions{MaskHeaders: []string{"X-API-Key"}}))
	} else {
		r.Use(middleware.Logger())
	}
	r.Use(middleware.Recovery())
	r.Use(limitBody(cfg.BodyLimitBytes))
	r.Use(middleware.Metrics())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{MaxLen: 200}, idem.exists))
	r.Use(middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIPAndMethod()).Handler())
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
	}))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, "Cannot "+c.Request.Method+" "+c.Request.URL.Path)
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, "Cannot "+c.Request.Method+" "+c.Request.URL.Path)
	})

	r.GET("/health", health(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h := handlers.New(
		services.NewUserService(db, userRepo),
		services.NewMemberService(db, memberRepo),
		services.NewChannelService(db, channelRepo),
		services.NewContentService(db, contentRepo),
		idem,
	)

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.PATCH("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)

		api.POST("/members", h.CreateMember)
		api.GET("/members", h.ListMembers)
		api.GET("/members/:id", h.GetMember)
		api.PATCH("/members/:id", h.UpdateMember)
		api.DELETE("/members/:id", h.DeleteMember)

		api.POST("/channels", h.CreateChannel)
		api.GET("/channels", h.ListChannels)
		api.GET("/channels/:id", h.GetChannel)
		api.PATCH("/channels/:id", h.UpdateChannel)
		api.DELETE("/channels/:id", h.DeleteChannel)

		api.POST("/contents", h.CreateContent)
		api.GET("/contents", h.ListContents)
		api.GET("/contents/:id", h.GetContent)
		api.PATCH("/contents/:id", h.UpdateContent)
		api.DELETE("/contents/:id", h.DeleteContent)
	}
}

// corsMiddleware allows any origin when none are configured, otherwise only
// the listed ones.
func corsMiddleware(origins []string) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     corsMethods,
		AllowHeaders:     corsHeaders,
		ExposeHeaders:    middleware.ExposedHeaders,
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return cors.New(c)
}

// health pings the database; 503 when it is unreachable.
func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			middleware.LoggerFrom(c).Error().Err(err).Msg("health: database unreachable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "db": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "up"})
	}
}

// limitBody caps request bodies at maxBytes.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
