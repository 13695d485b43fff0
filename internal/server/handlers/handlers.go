package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/RavinduUni/coinpulse/internal/infrastructure/clients"
	"github.com/RavinduUni/coinpulse/pkg/config"
)

type Handlers struct {
	Market *clients.Client
	Logger zerolog.Logger
	Config *config.Config
}

func New(market *clients.Client, logger zerolog.Logger, config *config.Config) *Handlers {
	return &Handlers{
		Market: market,
		Logger: logger,
		Config: config,
	}
}

func (h *Handlers) SetupHandlers(router *gin.Engine) {
	healthHandler := NewHealthHandler(h.Config)

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	router.GET("/", h.Dashboard)
	router.GET("/trending", h.Trending)
	router.GET("/search", h.Search)
}

// renderHTML writes a page component to the response. Render errors after the
// status line has gone out can only be logged.
func (h *Handlers) renderHTML(c *gin.Context, component templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		h.Logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Failed to render page")
	}
}
