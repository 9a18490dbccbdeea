package dashboard

import "github.com/gin-gonic/gin"

func RegisterRoutes(api *gin.RouterGroup, handler *Handler) {
	api.GET("/empresa/:id/dashboard", handler.Get)
}
