package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/socampo/folio-core/internal/middleware"
	"github.com/socampo/folio-core/internal/modules/auth"
	"github.com/socampo/folio-core/internal/modules/contact"
	"github.com/socampo/folio-core/internal/modules/content/aggregate"
	"github.com/socampo/folio-core/internal/modules/content/project"
	"github.com/socampo/folio-core/internal/modules/content/publication"
	"github.com/socampo/folio-core/internal/modules/content/skill"
	"github.com/socampo/folio-core/internal/modules/storage/upload"
	"github.com/socampo/folio-core/internal/pkg/response"
)

var processStart = time.Now()

func (a *App) registerRoutes() error {
	r := a.router
	db := a.db

	authMW := middleware.Auth(db)
	adminMW := middleware.AdminGate(db, a.cfg)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	api := r.Group("/api/v1")
	api.Use(middleware.OptionalAuth(db))
	if a.rc != nil {
		api.Use(middleware.RateLimit(a.rc.Raw()))
	}

	api.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})
	api.GET("/info", func(c *gin.Context) {
		response.OK(c, gin.H{
			"name":    "folio-core",
			"version": "1.0.0",
			"uptime":  int64(time.Since(processStart).Seconds()),
		})
	})

	aggHandler := aggregate.NewHandler(aggregate.NewService(db), a.rc, a.logger)
	aggHandler.RegisterRoutes(api)
	purge := aggHandler.Invalidate

	project.NewHandler(project.NewService(db), a.logger, purge).RegisterRoutes(api, adminMW)
	publication.NewHandler(publication.NewService(db), a.logger, purge).RegisterRoutes(api, adminMW)
	skill.NewHandler(skill.NewService(db), a.logger, purge).RegisterRoutes(api, adminMW)

	uploadHandler, err := upload.NewHandler(a.cfg, a.logger)
	if err != nil {
		return err
	}
	uploadHandler.RegisterRoutes(api, adminMW)
	uploadHandler.RegisterStatic(r.Group(""))

	auth.NewHandler(auth.NewService(db, a.cfg), a.logger).RegisterRoutes(api, authMW)
	contact.NewHandler(a.cfg, a.logger).RegisterRoutes(api)

	return nil
}
