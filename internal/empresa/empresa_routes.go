package empresa

import (
	"licitahub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(api *gin.RouterGroup, handler *Handler) {
	grp := api.Group("/empresa")
	{
		grp.GET("", handler.GetDefault)
		grp.POST("",
			middleware.RateLimitByIP(1, 3),
			handler.Create,
		)
		grp.PUT("/:id",
			middleware.RateLimitByIP(1, 3),
			handler.Update,
		)
	}
}
