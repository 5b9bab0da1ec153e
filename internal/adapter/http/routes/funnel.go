package routes

import (
	"datebook_funnel/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSlugConfigs   = "/slug-configs"
	PathRegistrations = "/registrations"
	PathPayments      = "/payments"
	PathSiteSlugs     = "/site-slugs"
)

func addFunnelRoutes(rg *gin.RouterGroup, slugConfigHandler *handlers.SlugConfigHandler, registrationHandler *handlers.RegistrationHandler, paymentHandler *handlers.PaymentHandler) {
	slugConfigs := rg.Group(PathSlugConfigs)
	{
		slugConfigs.GET("/:slug", slugConfigHandler.GetSlugConfig)
	}

	registrations := rg.Group(PathRegistrations)
	{
		registrations.POST("", registrationHandler.CreateRegistration)
	}

	siteSlugs := rg.Group(PathSiteSlugs)
	{
		// Consultado a cada tecla digitada (com debounce no front).
		siteSlugs.GET("/:site_slug/availability", registrationHandler.CheckSiteSlugAvailability)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("/:payment_id/status", paymentHandler.GetPaymentStatus)
		payments.GET("/:payment_id/pix", paymentHandler.GetPaymentPixQRCode)
	}
}
