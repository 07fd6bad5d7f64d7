package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"virtualcare/internal/domain"
)

// @Summary Недельное расписание специалиста
// @Description Возвращает еженедельные правила доступности специалиста
// @Tags Расписание
// @Produce json
// @Param id path string true "ID специалиста"
// @Success 200 {array} domain.AvailabilityRule "Правила доступности"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 404 {object} errorResponseBody "Специалист не найден"
// @Router /practitioners/{id}/availability [get]
func (h *Handler) getWeeklyAvailability(c *gin.Context) {
	practitionerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "неверный формат ID специалиста")
		return
	}

	rules, err := h.services.Availability.GetWeekly(c.Request.Context(), practitionerID)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, rules)
}

// @Summary Заменить недельное расписание
// @Description Полностью заменяет еженедельные правила доступности вызывающего специалиста
// @Tags Расписание
// @Accept json
// @Produce json
// @Param input body domain.SetWeeklyAvailabilityDTO true "Новый набор правил"
// @Success 200 {array} domain.AvailabilityRule "Сохраненные правила"
// @Failure 400 {object} errorResponseBody "Пересекающиеся или некорректные окна"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 422 {object} errorResponseBody "Нет ни одного включенного окна"
// @Security ApiKeyAuth
// @Router /practitioners/availability [put]
func (h *Handler) setWeeklyAvailability(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	practitioner, err := h.services.Practitioner.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("ошибка при получении данных специалиста", zap.Error(err))
		notFoundResponse(c, "профиль специалиста не найден")
		return
	}

	var req domain.SetWeeklyAvailabilityDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	rules, err := h.services.Availability.ReplaceWeekly(c.Request.Context(), practitioner.ID, req)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, rules)
}
