package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	intconfig "adminclient/internal/config"
	h "adminclient/internal/http/handlers"
	"adminclient/internal/http/middleware"
	"adminclient/internal/store"
)

// NewRouter mounts the portal convention for every store under its
// entity's base path.
func NewRouter(env intconfig.Env, stores []*store.Store) *gin.Engine {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", h.Health)

	for _, s := range stores {
		handler := h.NewEntityHandler(s)
		handler.Mount(r.Group(s.Config().BaseURL))
	}

	return r
}
