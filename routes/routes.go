package routes

import (
	"net/http"
	"time"

	"stayhub/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSearchRoutes registers hotel search and detail endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hotels")
	{
		api.POST("/search", hb.Search.SearchHotels)
		api.GET("/details/:hotelCode", hb.Hotels.GetHotelDetails)
		api.POST("/room-details", hb.Hotels.GetRoomDetails)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.CreateSession)
		bookingGroup.POST("/session/:sessionID/resolve", hb.Booking.ResolveBookingCode)
		bookingGroup.POST("/session/:sessionID/hold", hb.Booking.PlaceHold)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterRecordRoutes registers persisted booking record endpoints.
func RegisterRecordRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/id/:id", hb.Records.GetBooking)
		api.GET("/by-reference", hb.Records.GetBookingByReference)
		api.GET("/customer/:customerID", hb.Records.ListCustomerBookings)
		api.POST("/cancel/:confirmationNumber", hb.Records.CancelBooking)
	}
}

// RegisterCustomerRoutes registers customer profile endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.PUT("/update/:customerID", hb.Customer.UpdateCustomer)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Stayhub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSearchRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRecordRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterHealthRoute(r)
}
