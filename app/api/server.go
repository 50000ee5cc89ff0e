package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shook-dev/shook/app/cfg"
)

// NewServer creates the HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler) {
	appCfg := cfg.Get()

	r.GET("/health", handler.GetHealth)
	r.GET("/stats", handler.GetStats)

	// Operator endpoints, guarded by API key when one is configured
	if appCfg.APIAccessKey != "" {
		api := r.Group("/api")
		api.Use(authMiddleware(appCfg.APIAccessKey))
		{
			api.GET("/channels", handler.APIListChannels)
			api.POST("/channels", handler.APIAddChannel)
			api.DELETE("/channels/:id", handler.APIRemoveChannel)
			api.GET("/channels/:id/videos", handler.APIListChannelVideos)
			api.GET("/videos", handler.APIListVideos)
			api.GET("/monitor", handler.APIMonitorStatus)
			api.POST("/monitor/sweep", handler.APITriggerSweep)
		}
	}

	r.GET("/", func(c *gin.Context) {
		endpoints := map[string]string{
			"health": "/health",
			"stats":  "/stats",
		}
		if appCfg.APIAccessKey != "" {
			endpoints["channels"] = "/api/channels (requires X-API-Key header)"
			endpoints["videos"] = "/api/videos (requires X-API-Key header)"
			endpoints["monitor"] = "/api/monitor (requires X-API-Key header)"
			endpoints["sweep"] = "/api/monitor/sweep (POST, requires X-API-Key header)"
		}

		c.JSON(http.StatusOK, gin.H{
			"service":     "SHOOK",
			"version":     appCfg.Version,
			"description": "YouTube channel monitor that summarizes new uploads into Slack",
			"endpoints":   endpoints,
			"api_status": map[string]interface{}{
				"enabled": appCfg.APIAccessKey != "",
				"header":  "X-API-Key",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}

func authMiddleware(apiAccessKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-API-Key") != apiAccessKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			return
		}
		c.Next()
	}
}
