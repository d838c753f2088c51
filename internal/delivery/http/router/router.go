// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"giftscout/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BusinessHandler     *handler.BusinessHandler
	FilterHandler       *handler.FilterHandler
	SearchHandler       *handler.SearchHandler
	SelectionHandler    *handler.SelectionHandler
	GiftHandler         *handler.GiftHandler
	MapHandler          *handler.MapHandler
	NotificationHandler *handler.NotificationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	business     *handler.BusinessHandler
	filter       *handler.FilterHandler
	search       *handler.SearchHandler
	selection    *handler.SelectionHandler
	gift         *handler.GiftHandler
	mapCamera    *handler.MapHandler
	notification *handler.NotificationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		business:     params.BusinessHandler,
		filter:       params.FilterHandler,
		search:       params.SearchHandler,
		selection:    params.SelectionHandler,
		gift:         params.GiftHandler,
		mapCamera:    params.MapHandler,
		notification: params.NotificationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Business focus
	businessGroup := e.Group("/business")
	{
		businessGroup.GET("", r.business.GetBusiness)
		businessGroup.POST("", r.business.SetBusiness)
		businessGroup.DELETE("", r.business.ClearBusiness)
		businessGroup.GET("/lookup", r.business.Lookup)
	}

	// Filters and presets
	filterGroup := e.Group("/filters")
	{
		filterGroup.GET("", r.filter.GetFilters)
		filterGroup.PATCH("", r.filter.PatchFilters)
		filterGroup.POST("/reset", r.filter.ResetFilters)
		filterGroup.GET("/suggestions", r.filter.GetSuggestions)
		filterGroup.GET("/presets", r.filter.ListPresets)
		filterGroup.POST("/presets", r.filter.SavePreset)
		filterGroup.POST("/presets/:id/load", r.filter.LoadPreset)
		filterGroup.DELETE("/presets/:id", r.filter.DeletePreset)
	}

	// Search pipeline
	searchGroup := e.Group("/search")
	{
		searchGroup.POST("", r.search.RunSearch)
		searchGroup.GET("/estimate", r.search.GetEstimate)
		searchGroup.GET("/columns", r.search.GetColumns)
	}

	// Result set and person cards
	peopleGroup := e.Group("/people")
	{
		peopleGroup.GET("", r.search.ListPeople)
		peopleGroup.GET("/focused", r.selection.GetFocusedPerson)
		peopleGroup.POST("/:id/focus", r.selection.FocusPerson)
		peopleGroup.DELETE("/focus", r.selection.UnfocusPerson)
	}

	// Selection
	selectionGroup := e.Group("/selection")
	{
		selectionGroup.GET("", r.selection.GetSelection)
		selectionGroup.POST("/:id/toggle", r.selection.ToggleSelection)
		selectionGroup.DELETE("", r.selection.ClearSelection)
	}

	// Gift catalog and panel
	giftGroup := e.Group("/gifts")
	{
		giftGroup.GET("", r.gift.GetCatalog)
		giftGroup.POST("/panel/open", r.gift.OpenGiftSelection)
		giftGroup.POST("/panel/close", r.gift.CloseGiftSelection)
	}

	// Orders
	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.gift.SendGifts)
		orderGroup.GET("/current", r.gift.GetCurrentOrder)
		orderGroup.DELETE("/confirmation", r.gift.CloseOrderConfirmation)
		orderGroup.GET("/:id/status", r.gift.GetOrderStatus)
	}

	// Map camera and renderer events
	mapGroup := e.Group("/map")
	{
		mapGroup.GET("", r.mapCamera.GetMapState)
		mapGroup.PUT("", r.mapCamera.SetMapState)
		mapGroup.POST("/events/move-end", r.mapCamera.MoveEnd)
		mapGroup.POST("/events/marker-click", r.mapCamera.MarkerClick)
	}

	// Notifications
	notificationGroup := e.Group("/notifications")
	{
		notificationGroup.GET("", r.notification.ListNotifications)
		notificationGroup.DELETE("/:id", r.notification.DismissNotification)
	}
}
