// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookswap/internal/delivery/http/middleware"
	"bookswap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	BookHandler    *handler.BookHandler
	OfferHandler   *handler.OfferHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	bookHandler    *handler.BookHandler
	offerHandler   *handler.OfferHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		bookHandler:    params.BookHandler,
		offerHandler:   params.OfferHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Signup and login are the only routes reachable without a session token.
	userGroup := e.Group("/users")
	{
		userGroup.POST("/signup", r.userHandler.Signup)
		userGroup.POST("/login", r.userHandler.Login)

		protected := userGroup.Group("/user", r.authMiddleware.Authenticate)
		protected.GET("/:userId", r.userHandler.GetUser)
		protected.PATCH("/:userId", r.userHandler.UpdateUser)
	}

	bookGroup := e.Group("/books", r.authMiddleware.Authenticate)
	{
		bookGroup.GET("/all/:userId", r.bookHandler.ListOthers)
		bookGroup.GET("/book/:bookId", r.bookHandler.GetBook)
		bookGroup.PATCH("/book/:bookId", r.bookHandler.UpdateBook)
		bookGroup.DELETE("/book/:bookId", r.bookHandler.DeleteBook)
		bookGroup.POST("/:userId", r.bookHandler.CreateBook)
		bookGroup.GET("/:userId", r.bookHandler.ListOwned)
	}

	offerGroup := e.Group("/offers", r.authMiddleware.Authenticate)
	{
		offerGroup.PATCH("/accept/:offerId", r.offerHandler.Accept)
		offerGroup.POST("/:userId/book/:bookId", r.offerHandler.Propose)
		offerGroup.PATCH("/:userId/book/:bookId/:offerId", r.offerHandler.Counter)
		offerGroup.GET("/:userId", r.offerHandler.ListForUser)
		offerGroup.DELETE("/:offerId", r.offerHandler.Withdraw)
	}
}
