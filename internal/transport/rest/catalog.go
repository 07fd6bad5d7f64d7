package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"virtualcare/internal/domain"
)

// @Summary Каталог услуг
// @Description Возвращает список услуг, опционально по категории
// @Tags Услуги
// @Produce json
// @Param category query string false "Категория услуги"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {array} domain.Service "Список услуг"
// @Router /services [get]
func (h *Handler) getServices(c *gin.Context) {
	filter := domain.ServiceFilter{}

	category := c.DefaultQuery("category", "")
	if category != "" {
		filter.Category = &category
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter.Limit = limit
	filter.Offset = offset

	services, err := h.services.Catalog.List(c.Request.Context(), filter)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, services)
}

// @Summary Получить услугу по ID
// @Description Возвращает услугу каталога по указанному ID
// @Tags Услуги
// @Produce json
// @Param id path string true "ID услуги"
// @Success 200 {object} domain.Service "Данные услуги"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Услуга не найдена"
// @Router /services/{id} [get]
func (h *Handler) getServiceByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "неверный формат ID услуги")
		return
	}

	catalogService, err := h.services.Catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, catalogService)
}
