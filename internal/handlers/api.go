// SPDX-License-Identifier: MIT

// Package handlers serves the theme engine and the project store over HTTP.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/thatcatcamp/huekit/internal/config"
	"github.com/thatcatcamp/huekit/internal/designer"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/logging"
	"github.com/thatcatcamp/huekit/internal/middleware"
	"github.com/thatcatcamp/huekit/internal/oklch"
	"github.com/thatcatcamp/huekit/internal/projects"
	"github.com/thatcatcamp/huekit/internal/themes"
)

// API holds what the handlers share
type API struct {
	db       *gorm.DB
	memo     *themes.Memo
	defaults config.ThemeDefaults
	sessions *sessionStore
	log      zerolog.Logger
}

// New builds an API over database using the configured theme defaults
func New(database *gorm.DB, defaults config.ThemeDefaults) *API {
	RegisterValidators()
	if defaults.Options.Diagnostics == nil {
		defaults.Options.Diagnostics = logging.NewDiagnostics()
	}
	memo := themes.NewMemo(defaults.CacheSize)
	return &API{
		db:       database,
		memo:     memo,
		defaults: defaults,
		sessions: newSessionStore(memo, defaults.Options),
		log:      logging.Component("http"),
	}
}

// RouterOptions tune NewRouter
type RouterOptions struct {
	RateLimit int // requests per minute per client on /api, 0 disables
}

// NewRouter returns a gin engine with middleware and all routes
func NewRouter(a *API, opts RouterOptions) (*gin.Engine, func()) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(a.log))
	r.Use(middleware.SecurityHeadersMiddleware())

	stop := func() {}
	if opts.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(opts.RateLimit, time.Minute)
		r.Use(middleware.RateLimitMiddleware(limiter, "/api/"))
		stop = limiter.Stop
	}

	a.Register(r)
	return r, stop
}

// Register mounts the routes on r
func (a *API) Register(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"service":       "huekit",
			"cached_themes": a.memo.Len(),
		})
	})

	api := r.Group("/api")
	{
		api.GET("/harmonies", a.ListHarmonies)
		api.GET("/contrast", a.CheckContrast)

		api.POST("/themes", a.GenerateTheme)
		api.POST("/themes/css", a.ThemeCSS)
		api.GET("/themes/compare", a.CompareHarmonies)

		api.GET("/presets", a.ListPresets)
		api.GET("/presets/:name", a.GetPreset)

		api.GET("/projects", a.ListProjects)
		api.POST("/projects", a.CreateProject)
		api.GET("/projects/:name", a.GetProject)
		api.DELETE("/projects/:name", a.DeleteProject)
		api.GET("/projects/:name/history", a.ProjectHistory)
		api.POST("/projects/:name/preview", a.PreviewProject)
		api.POST("/projects/:name/cancel", a.CancelPreview)
		api.POST("/projects/:name/apply", a.ApplyProject)
		api.GET("/projects/:name/theme.css", a.ProjectCSS)
	}
}

// statusFor maps a domain error to an HTTP status
func statusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			if fe.Tag() == "csscolor" {
				return http.StatusUnprocessableEntity
			}
		}
		return http.StatusBadRequest
	case errors.Is(err, themes.ErrInvalidPrimary), errors.Is(err, oklch.ErrUnparseable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, projects.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, projects.ErrExists), errors.Is(err, designer.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, projects.ErrInvalidName), errors.Is(err, projects.ErrInvalid),
		errors.Is(err, harmony.ErrUnknownHarmony), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

func (a *API) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.Error(err)
		c.AbortWithStatusJSON(status, gin.H{"error": "internal error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
