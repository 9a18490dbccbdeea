package documento

import (
	"licitahub/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(api *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	grp := api.Group("/documentos")
	{
		grp.GET("", handler.GetAll)
		grp.POST("",
			middleware.BodyLimit(middleware.MaxUploadSize),
			middleware.Idempotency(rdb),
			handler.Upload,
		)
		// Static paths before the :id wildcard.
		grp.GET("/tipos", handler.GetTipos)
		grp.GET("/alertas", handler.GetAlertas)
		grp.GET("/:id", handler.GetByID)
		grp.DELETE("/:id", handler.Delete)
	}
}
