package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Immortal-romantic/hotel-booking-api/handlers"
	"github.com/Immortal-romantic/hotel-booking-api/utils"
)

// RegisterRoomRoutes registers room endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	rooms := r.Group("/rooms")
	{
		rooms.POST("/create", hb.CreateRoomHandler)
		rooms.GET("/list", hb.ListRoomsHandler)
		rooms.POST("/delete", hb.DeleteRoomHandler)
		rooms.DELETE("/:room_id", hb.DeleteRoomByIDHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("/create", hb.CreateBookingHandler)
		bookings.GET("/list", hb.ListBookingsHandler)
		bookings.POST("/delete", hb.DeleteBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterIndexRoute serves a short API index at the root.
func RegisterIndexRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Hotel Booking API",
			"version": "1.0",
			"endpoints": gin.H{
				"rooms": gin.H{
					"create": "POST /rooms/create",
					"list":   "GET /rooms/list",
					"delete": "POST /rooms/delete",
				},
				"bookings": gin.H{
					"create": "POST /bookings/create",
					"list":   "GET /bookings/list",
					"delete": "POST /bookings/delete",
				},
			},
		})
	})
}

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterIndexRoute(r)
	RegisterHealthRoute(r)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
