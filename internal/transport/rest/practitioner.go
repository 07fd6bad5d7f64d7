package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Получить специалиста по ID
// @Description Возвращает справочную карточку специалиста
// @Tags Специалисты
// @Produce json
// @Param id path string true "ID специалиста"
// @Success 200 {object} domain.Practitioner "Данные специалиста"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Специалист не найден"
// @Router /practitioners/{id} [get]
func (h *Handler) getPractitionerByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "неверный формат ID специалиста")
		return
	}

	practitioner, err := h.services.Practitioner.GetByID(c.Request.Context(), id)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, practitioner)
}
