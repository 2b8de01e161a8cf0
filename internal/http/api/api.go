package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kandil-labs/vakit/internal/http/middleware"
	"github.com/kandil-labs/vakit/internal/model"
)

type APIError struct {
	Code    int
	Message string
}

// HandlerFuncWithDevice is an endpoint that requires an enrolled device;
// the JWT middleware resolves it before the handler runs.
type HandlerFuncWithDevice func(ctx *gin.Context, device *model.Device) (any, *APIError)

// HandlerFunc is a public endpoint.
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

func ResolveEndpointWithDevice(h HandlerFuncWithDevice) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		device, ok := middleware.GetCurrentDevice(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		result, apiErr := h(ctx, device)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

// Controller is the gin group a Module attaches its endpoints to. The
// uppercase PUBLIC_ variants skip the device requirement and are only
// meaningful inside groups mounted without Auth.
type Controller struct {
	Group *gin.RouterGroup
}

func (c *Controller) GET(path string, h HandlerFuncWithDevice) {
	c.Group.GET(path, ResolveEndpointWithDevice(h))
}

func (c *Controller) POST(path string, h HandlerFuncWithDevice) {
	c.Group.POST(path, ResolveEndpointWithDevice(h))
}

func (c *Controller) PUT(path string, h HandlerFuncWithDevice) {
	c.Group.PUT(path, ResolveEndpointWithDevice(h))
}

func (c *Controller) DELETE(path string, h HandlerFuncWithDevice) {
	c.Group.DELETE(path, ResolveEndpointWithDevice(h))
}

func (c *Controller) PUBLIC_GET(path string, h HandlerFunc) {
	c.Group.GET(path, ResolveEndpoint(h))
}

func (c *Controller) PUBLIC_POST(path string, h HandlerFunc) {
	c.Group.POST(path, ResolveEndpoint(h))
}
