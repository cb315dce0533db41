package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the full route table. Tests drive the
// returned engine directly through httptest.
func NewRouter(api *API) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(config))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	router.POST("/token", api.Login)
	router.POST("/create_admin_user", api.CreateAdminUser)
	router.GET("/books", api.GetBooks)

	// Authenticated routes
	authed := router.Group("", api.RequireAuth())
	{
		authed.POST("/borrow_request", api.CreateBorrowRequest)
		authed.GET("/borrow_history", api.GetBorrowHistory)
	}

	// Admin routes
	admin := authed.Group("", api.RequireAdmin())
	{
		admin.POST("/create_user", api.CreateUser)
		admin.POST("/add_book", api.AddBook)
		admin.GET("/borrow_requests", api.GetBorrowRequests)
		admin.POST("/approve_request/:id", api.ApproveRequest)
		admin.GET("/user/:id/borrow_history", api.GetUserBorrowHistory)
	}

	return router
}
