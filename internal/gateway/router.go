package gateway

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"taskhub/internal/identity"
)

// RegisterRoutes mounts the gateway's protected routes on the engine. Every
// route runs identity.AuthRequired first, then forwards to the service that
// owns the path. The resource services validate the token a second time on
// arrival; the gateway's check just keeps garbage off their doorstep.
func RegisterRoutes(
	engine *gin.Engine,
	client identity.Client,
	proxy *Proxy,
	userServiceURL string,
	taskServiceURL string,
	logger *slog.Logger,
) {
	protected := engine.Group("", identity.AuthRequired(client, logger))

	protected.GET("/users/me", proxy.Forward(userServiceURL))

	protected.POST("/tasks", proxy.Forward(taskServiceURL))
	protected.GET("/tasks", proxy.Forward(taskServiceURL))
	protected.GET("/tasks/:id", proxy.Forward(taskServiceURL))
	protected.PUT("/tasks/:id", proxy.Forward(taskServiceURL))
	protected.DELETE("/tasks/:id", proxy.Forward(taskServiceURL))
}
