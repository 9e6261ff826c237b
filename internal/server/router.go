package server

import (
	"gearshare/internal/bookingservice"
	"gearshare/internal/itemservice"
	"gearshare/internal/requestservice"
	"gearshare/internal/userservice"
	handler "gearshare/services/sharing/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the backend application
func SetupRouter(
	bookingService *bookingservice.BookingService,
	itemService *itemservice.ItemService,
	userService *userservice.UserService,
	requestService *requestservice.RequestService,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	bookingHandler := handler.NewBookingHandler(bookingService)
	itemHandler := handler.NewItemHandler(itemService)
	userHandler := handler.NewUserHandler(userService)
	requestHandler := handler.NewRequestHandler(requestService)

	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUserHandler)
		users.GET("", userHandler.ListUsersHandler)
		users.GET("/:user_id", userHandler.GetUserHandler)
		users.PATCH("/:user_id", userHandler.UpdateUserHandler)
		users.DELETE("/:user_id", userHandler.DeleteUserHandler)
	}

	items := router.Group("/items", RequireIdentity)
	{
		items.POST("", itemHandler.CreateItemHandler)
		items.GET("", itemHandler.ListOwnerItemsHandler)
		items.GET("/search", itemHandler.SearchItemsHandler)
		items.GET("/:item_id", itemHandler.GetItemHandler)
		items.PATCH("/:item_id", itemHandler.UpdateItemHandler)
		items.POST("/:item_id/comment", itemHandler.CreateCommentHandler)
	}

	bookings := router.Group("/bookings", RequireIdentity)
	{
		bookings.POST("", bookingHandler.CreateBookingHandler)
		bookings.GET("", bookingHandler.ListBookingsHandler)
		bookings.GET("/owner", bookingHandler.ListOwnerBookingsHandler)
		bookings.GET("/:booking_id", bookingHandler.GetBookingHandler)
		bookings.PATCH("/:booking_id", bookingHandler.ApproveBookingHandler)
	}

	requests := router.Group("/requests", RequireIdentity)
	{
		requests.POST("", requestHandler.CreateRequestHandler)
		requests.GET("", requestHandler.ListOwnRequestsHandler)
		requests.GET("/all", requestHandler.ListAllRequestsHandler)
		requests.GET("/:request_id", requestHandler.GetRequestHandler)
	}

	return router
}
