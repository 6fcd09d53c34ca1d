// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pristol/internal/delivery/http/middleware"
	"pristol/internal/delivery/http/router/handler"
	"pristol/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProductHandler   *handler.ProductHandler
	OrderHandler     *handler.OrderHandler
	MessageHandler   *handler.MessageHandler
	DashboardHandler *handler.DashboardHandler
	UploadHandler    *handler.UploadHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	productHandler   *handler.ProductHandler
	orderHandler     *handler.OrderHandler
	messageHandler   *handler.MessageHandler
	dashboardHandler *handler.DashboardHandler
	uploadHandler    *handler.UploadHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		productHandler:   params.ProductHandler,
		orderHandler:     params.OrderHandler,
		messageHandler:   params.MessageHandler,
		dashboardHandler: params.DashboardHandler,
		uploadHandler:    params.UploadHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Everything below requires an authenticated admin
	admin := e.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		admin.POST("/refresh", r.dashboardHandler.Refresh)
		admin.GET("/loading", r.dashboardHandler.Loading)

		admin.GET("/dashboard/stats", r.dashboardHandler.Stats)

		admin.GET("/products", r.productHandler.ListProducts)
		admin.GET("/products/categories", r.productHandler.ListCategories)
		admin.GET("/products/:id", r.productHandler.GetProduct)
		admin.POST("/products", r.productHandler.CreateProduct)
		admin.PATCH("/products/:id", r.productHandler.UpdateProduct)
		admin.DELETE("/products/:id", r.productHandler.DeleteProduct)
		admin.GET("/products/:id/qrcode", r.productHandler.ProductQRCode)

		admin.GET("/orders", r.orderHandler.ListOrders)
		admin.GET("/orders/summary", r.orderHandler.OrderSummary)
		admin.GET("/orders/:id", r.orderHandler.GetOrder)
		admin.PATCH("/orders/:id/status", r.orderHandler.UpdateOrderStatus)

		admin.GET("/messages", r.messageHandler.ListMessages)
		admin.PATCH("/messages/:id/status", r.messageHandler.UpdateMessageStatus)
		admin.POST("/messages/:id/read", r.messageHandler.MarkRead)
		admin.POST("/messages/:id/replied", r.messageHandler.MarkReplied)
		admin.DELETE("/messages/:id", r.messageHandler.DeleteMessage)

		admin.POST("/uploads", r.uploadHandler.UploadImage)
	}
}
