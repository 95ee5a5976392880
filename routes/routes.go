package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"easyappointment/handlers"
	"easyappointment/utils"
)

// HandlerBundle aggregates the handlers wired in main.
type HandlerBundle struct {
	Branch   *handlers.BranchHandler
	Provider *handlers.ProviderHandler
	Slot     *handlers.SlotHandler
	Booking  *handlers.BookingHandler
}

// RegisterRoutes registers all endpoints with the assembled handler bundle.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	api := r.Group("/api")

	branches := api.Group("/branches")
	{
		branches.POST("", hb.Branch.CreateBranchHandler)
		branches.GET("/:branchID", hb.Branch.GetBranchHandler)
		branches.POST("/:branchID/providers", hb.Provider.RegisterProviderHandler)
		branches.GET("/:branchID/providers", hb.Provider.ListProvidersHandler)
	}

	providers := api.Group("/providers")
	{
		providers.GET("/:id", hb.Provider.GetProviderByIDHandler)
		providers.DELETE("/:id", hb.Provider.DeleteProviderHandler)
		providers.GET("/:id/slots", hb.Slot.GetProviderSlotsHandler)
	}

	bookings := api.Group("/bookings")
	{
		bookings.POST("", hb.Booking.CreateBookingHandler)
		bookings.DELETE("/by-slot/:slotID", hb.Booking.CancelBookingHandler)
	}

	api.GET("/users/:userID/bookings", hb.Booking.ListUserBookingsHandler)
}
