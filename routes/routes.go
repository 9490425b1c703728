package routes

import (
	"log/slog"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tommytoyou/bost-lawn-care/config"
	"github.com/tommytoyou/bost-lawn-care/controllers"
	"github.com/tommytoyou/bost-lawn-care/obs"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

// Handlers bundles everything the router dispatches to.
type Handlers struct {
	Auth      *controllers.AuthHandler
	Services  *controllers.ServiceHandler
	Content   *controllers.ContentHandler
	Invoices  *controllers.InvoiceHandler
	Inquiries *controllers.InquiryHandler
	Bookings  *controllers.BookingHandler
	Dashboard *controllers.DashboardHandler
}

func SetupRouter(h Handlers, gate *utils.AdminGate, allowedOrigins []string, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "traceparent"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return slices.Contains(allowedOrigins, origin)
		},
	}))

	r.Use(obs.Tracing())
	r.Use(config.PerformanceLogger(logger))

	api := r.Group("/api")

	content := api.Group("/content")
	{
		content.GET("/services", h.Services.GetServices)
		content.GET("/testimonials", h.Content.GetTestimonials)
		content.GET("/testimonials/featured", h.Content.GetFeaturedTestimonial)
		content.GET("/gallery", h.Content.GetGallery)
		content.GET("/site", h.Content.GetSiteContent)
		content.GET("/about", h.Content.GetAbout)
	}

	api.GET("/invoices/:id", h.Invoices.GetInvoice)
	api.POST("/inquiries", h.Inquiries.CreateInquiry)

	wizard := api.Group("/bookings/wizard")
	{
		wizard.POST("", h.Bookings.StartWizard)
		wizard.GET("/:id", h.Bookings.GetWizard)
		wizard.PUT("/:id/services/:serviceId", h.Bookings.ToggleService)
		wizard.PUT("/:id/property", h.Bookings.SetProperty)
		wizard.PUT("/:id/contact", h.Bookings.SetContact)
		wizard.POST("/:id/next", h.Bookings.Next)
		wizard.POST("/:id/back", h.Bookings.Back)
		wizard.POST("/:id/submit", h.Bookings.Submit)
		wizard.POST("/:id/reset", h.Bookings.Reset)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/login", h.Auth.Login)
		admin.POST("/logout", h.Auth.Logout)

		admin.Use(gate.AuthMiddleware())
		admin.GET("/dashboard", h.Dashboard.GetDashboardOverview)

		admin.PUT("/services/:id", h.Services.UpdateService)

		admin.POST("/testimonials", h.Content.AddTestimonial)
		admin.PUT("/testimonials/:id", h.Content.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", h.Content.DeleteTestimonial)

		admin.POST("/gallery", h.Content.AddGalleryImage)
		admin.DELETE("/gallery/:id", h.Content.DeleteGalleryImage)

		admin.PUT("/site", h.Content.UpdateSiteContent)

		admin.GET("/bookings", h.Bookings.GetBookings)
		admin.GET("/inquiries", h.Inquiries.GetInquiries)
	}

	return r
}
