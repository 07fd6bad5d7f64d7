package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"virtualcare/config"
	"virtualcare/internal/service"
	"virtualcare/pkg/auth"
)

type Handler struct {
	services     *service.Services
	logger       *zap.Logger
	config       *config.Config
	tokenManager *auth.TokenManager
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config, tokenManager *auth.TokenManager) *Handler {
	return &Handler{
		services:     services,
		logger:       logger,
		config:       config,
		tokenManager: tokenManager,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		services := api.Group("/services")
		{
			services.GET("/", h.getServices)
			services.GET("/:id", h.getServiceByID)
		}

		practitioners := api.Group("/practitioners")
		{
			practitioners.GET("/:id", h.getPractitionerByID)
			practitioners.GET("/:id/availability", h.getWeeklyAvailability)

			practitioners.PUT("/availability", h.authMiddleware(), h.practitionerMiddleware(), h.setWeeklyAvailability)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("/slots", h.getBookableSlots)

			auth := appointments.Group("/")
			auth.Use(h.authMiddleware())
			{
				auth.POST("/", h.createAppointment)
				auth.GET("/", h.getAppointments)
				auth.GET("/:id", h.getAppointmentByID)
				auth.PATCH("/:id/status", h.updateAppointmentStatus)
				auth.PATCH("/:id/video-room", h.setAppointmentVideoRoom)
				auth.DELETE("/:id", h.cancelAppointment)
			}
		}
	}
}
