package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/config"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/api/handler"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/api/middleware"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/pkg/redis"
)

// Workbook uploads carry whole-term catalogs; everything else is
// small JSON.
const (
	jsonBodyLimit   = 1 << 20  // 1MB
	uploadBodyLimit = 20 << 20 // 20MB
)

// Setup builds the Gin engine with every route wired.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── Health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Term module
		terms := v1.Group("/terms")
		{
			terms.GET("", h.Term.List)
			terms.GET("/current", h.Term.GetCurrent)
			terms.GET("/:id", h.Term.Get)
			terms.POST("", middleware.BodyLimit(jsonBodyLimit), h.Term.Create)
			terms.PATCH("/:id", middleware.BodyLimit(jsonBodyLimit), h.Term.Update)

			// Catalog module (nested under its term)
			terms.POST("/:id/catalog", middleware.BodyLimit(uploadBodyLimit), h.Catalog.Import)
			terms.GET("/:id/catalog", h.Catalog.List)
			terms.GET("/:id/catalog/:nrc", h.Catalog.Get)
		}

		// Schedule module
		schedules := v1.Group("/schedules")
		schedules.Use(middleware.BodyLimit(jsonBodyLimit))
		{
			// The preview walks every section pair, so it gets a rate
			// limit the catalog reads do not need.
			schedules.POST("/preview", middleware.RateLimit(rdb, 30, time.Minute), h.Schedule.Preview)
			schedules.POST("", h.Schedule.CreateSaved)
			schedules.GET("", h.Schedule.ListSaved)
			schedules.GET("/:id", h.Schedule.GetSaved)
			schedules.GET("/:id/preview", middleware.RateLimit(rdb, 30, time.Minute), h.Schedule.PreviewSaved)
			schedules.PATCH("/:id", h.Schedule.UpdateSaved)
			schedules.DELETE("/:id", h.Schedule.DeleteSaved)

			// Export module
			schedules.GET("/:id/export/ics", h.Export.ExportICS)
			schedules.GET("/:id/export/json", h.Export.ExportJSON)
		}
	}

	return r
}
