package licitacao

import (
	"licitahub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(api *gin.RouterGroup, handler *Handler) {
	grp := api.Group("/licitacoes")
	{
		grp.GET("", handler.GetAll)
		grp.POST("",
			middleware.RateLimitByIP(5, 10),
			handler.Create,
		)
		// Static paths before the :id wildcard.
		grp.GET("/status", handler.GetStatuses)
		grp.GET("/:id", handler.GetByID)
		grp.PUT("/:id", handler.Update)
		grp.DELETE("/:id", handler.Delete)
	}
}
