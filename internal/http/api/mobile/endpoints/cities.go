package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/kandil-labs/vakit/internal/http/api"
	"github.com/kandil-labs/vakit/internal/model"
)

// CitiesPublicModule mounts the selectable city list (/cities).
func CitiesPublicModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/cities", listCities)
	})
}

// GET /api/mobile/cities
func listCities(ctx *gin.Context) (any, *api.APIError) {
	return model.TurkishCities, nil
}
