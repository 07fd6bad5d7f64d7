package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"virtualcare/internal/domain"
)

type errorResponseBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

type successResponseBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type paginatedResponse struct {
	Data       interface{} `json:"data"`
	TotalCount int         `json:"total_count"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

func paginatedSuccessResponse(c *gin.Context, data interface{}, totalCount, page, pageSize int) {
	totalPages := totalCount / pageSize
	if totalCount%pageSize > 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, paginatedResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func unauthorizedResponse(c *gin.Context) {
	errorResponse(c, http.StatusUnauthorized, "требуется авторизация")
}

func forbiddenResponse(c *gin.Context, message ...string) {
	msg := "доступ запрещен"
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	errorResponse(c, http.StatusForbidden, msg)
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, message)
}

func internalServerErrorResponse(c *gin.Context) {
	errorResponse(c, http.StatusInternalServerError, "внутренняя ошибка сервера")
}

// domainErrorResponse переводит ошибки предметной области в HTTP-статусы.
// Конфликтные ошибки бронирования возвращают 409: клиенту следует
// перечитать слоты, а не повторять запрос вслепую.
func (h *Handler) domainErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		notFoundResponse(c, err.Error())
	case errors.Is(err, domain.ErrInvalidRange):
		badRequestResponse(c, err.Error())
	case errors.Is(err, domain.ErrNoAvailabilityConfigured):
		errorResponse(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrOutsideAvailability),
		errors.Is(err, domain.ErrSlotTooSoon),
		errors.Is(err, domain.ErrSlotAlreadyBooked),
		errors.Is(err, domain.ErrSlotBeingBooked),
		errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrCancellationWindowClosed):
		errorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrStorageUnavailable):
		h.logger.Error("хранилище недоступно", zap.Error(err))
		errorResponse(c, http.StatusServiceUnavailable, "хранилище временно недоступно, повторите запрос")
	default:
		h.logger.Error("необработанная ошибка", zap.Error(err))
		internalServerErrorResponse(c)
	}
}
