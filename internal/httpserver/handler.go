package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers the Discord interactions endpoint. Discord
// delivers every slash command invocation (and its signature verification
// PINGs) as a POST to this single route.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	srv.gin.POST("/interactions", srv.interactionHandler.HandleInteraction)
	srv.l.Infof(ctx, "Discord interactions route registered at POST /interactions")
}
