// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"larder/internal/delivery/http/middleware"
	"larder/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ListHandler         *handler.ListHandler
	PreferenceHandler   *handler.PreferenceHandler
	ReconcileHandler    *handler.ReconcileHandler
	ConnectivityHandler *handler.ConnectivityHandler
	IdentityMiddleware  *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	listHandler         *handler.ListHandler
	preferenceHandler   *handler.PreferenceHandler
	reconcileHandler    *handler.ReconcileHandler
	connectivityHandler *handler.ConnectivityHandler
	identityMiddleware  *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		listHandler:         params.ListHandler,
		preferenceHandler:   params.PreferenceHandler,
		reconcileHandler:    params.ReconcileHandler,
		connectivityHandler: params.ConnectivityHandler,
		identityMiddleware:  params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.GET("/connectivity", r.connectivityHandler.GetStatus)

	// Every identity-scoped route resolves the caller from the header;
	// anonymous callers are admitted and rejected per operation.
	listGroup := e.Group("/lists")
	listGroup.Use(r.identityMiddleware.Resolve)
	{
		listGroup.GET("", r.listHandler.GetLists)
		listGroup.POST("", r.listHandler.CreateList)
		listGroup.GET("/:id", r.listHandler.GetList)
		listGroup.PATCH("/:id", r.listHandler.RenameList)
		listGroup.DELETE("/:id", r.listHandler.DeleteList)
		listGroup.POST("/:id/items", r.listHandler.AddItem)
		listGroup.DELETE("/:id/items/:itemID", r.listHandler.RemoveItem)

		listGroup.GET("/:id/missing", r.reconcileHandler.GetMissing)
		listGroup.POST("/:id/send-missing", r.reconcileHandler.SendMissing)
	}

	prefGroup := e.Group("/preferences")
	prefGroup.Use(r.identityMiddleware.Resolve)
	{
		prefGroup.GET("/interface", r.preferenceHandler.GetInterfacePreferences)
		prefGroup.PATCH("/interface", r.preferenceHandler.UpdateInterfacePreferences)
		prefGroup.GET("/user", r.preferenceHandler.GetUserPreferences)
		prefGroup.PATCH("/user", r.preferenceHandler.UpdateUserPreferences)
		prefGroup.GET("/sync-status", r.preferenceHandler.GetSyncStatus)
	}

	shoppingGroup := e.Group("/shopping")
	shoppingGroup.Use(r.identityMiddleware.Resolve)
	{
		shoppingGroup.POST("/send-selected", r.reconcileHandler.SendSelected)
	}
}
