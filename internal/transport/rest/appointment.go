package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"virtualcare/internal/domain"
)

// @Summary Создать запись на прием
// @Description Бронирует слот у специалиста. Конфликт за слот возвращает 409
// @Tags Записи
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Данные для записи на прием"
// @Success 201 {object} domain.Appointment "Созданная запись"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 409 {object} errorResponseBody "Слот занят или недоступен"
// @Failure 503 {object} errorResponseBody "Хранилище недоступно"
// @Security ApiKeyAuth
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.logger.Warn("ошибка получения ID пользователя", zap.Error(err))
		unauthorizedResponse(c)
		return
	}

	role, _ := getUserRole(c)
	if role != domain.UserRolePatient {
		forbiddenResponse(c, "запись на прием создает пациент")
		return
	}

	var req domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	appointment, err := h.services.Appointment.Create(c.Request.Context(), userID, req, time.Now())
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	createdResponse(c, appointment)
}

// @Summary Свободные слоты
// @Description Вычисляет свободные слоты специалиста для услуги в диапазоне дат
// @Tags Записи
// @Produce json
// @Param practitioner_id query string true "ID специалиста"
// @Param service_id query string true "ID услуги"
// @Param date_from query string true "Начало диапазона (YYYY-MM-DD)"
// @Param date_to query string true "Конец диапазона (YYYY-MM-DD)"
// @Success 200 {array} domain.BookingSlot "Свободные слоты"
// @Failure 400 {object} errorResponseBody "Неверный диапазон дат"
// @Failure 404 {object} errorResponseBody "Специалист или услуга не найдены"
// @Router /appointments/slots [get]
func (h *Handler) getBookableSlots(c *gin.Context) {
	practitionerID, err := uuid.Parse(c.Query("practitioner_id"))
	if err != nil {
		badRequestResponse(c, "неверный формат ID специалиста")
		return
	}

	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		badRequestResponse(c, "неверный формат ID услуги")
		return
	}

	query := domain.SlotsQuery{
		PractitionerID: practitionerID,
		ServiceID:      serviceID,
		DateFrom:       c.Query("date_from"),
		DateTo:         c.Query("date_to"),
	}

	slots, err := h.services.Appointment.GetBookableSlots(c.Request.Context(), query, time.Now())
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary Получить запись по ID
// @Description Возвращает запись на прием; доступна только ее участникам
// @Tags Записи
// @Produce json
// @Param id path string true "ID записи"
// @Success 200 {object} domain.Appointment "Данные записи"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Security ApiKeyAuth
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	allowed, err := h.appointmentAccess(c, appointment)
	if err != nil {
		h.logger.Error("ошибка проверки доступа к записи", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if !allowed {
		forbiddenResponse(c)
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Список записей
// @Description Возвращает записи вызывающего: пациент видит свои, специалист свои
// @Tags Записи
// @Produce json
// @Param status query string false "Фильтр по статусу"
// @Param date_from query string false "Начало диапазона (YYYY-MM-DD)"
// @Param date_to query string false "Конец диапазона (YYYY-MM-DD)"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Страница записей"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Security ApiKeyAuth
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	role, err := getUserRole(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	filter := domain.AppointmentFilter{}

	if role == domain.UserRolePractitioner {
		practitioner, err := h.services.Practitioner.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			h.logger.Error("ошибка при получении данных специалиста", zap.Error(err))
			notFoundResponse(c, "профиль специалиста не найден")
			return
		}
		filter.PractitionerID = &practitioner.ID
	} else {
		filter.PatientID = &userID
	}

	statusStr := c.DefaultQuery("status", "")
	if statusStr != "" {
		status := domain.AppointmentStatus(statusStr)
		if !status.IsValid() {
			badRequestResponse(c, "неизвестный статус записи")
			return
		}
		filter.Status = &status
	}

	dateFrom := c.DefaultQuery("date_from", "")
	if dateFrom != "" {
		parsedDate, err := time.Parse("2006-01-02", dateFrom)
		if err == nil {
			filter.StartDate = &parsedDate
		}
	}

	dateTo := c.DefaultQuery("date_to", "")
	if dateTo != "" {
		parsedDate, err := time.Parse("2006-01-02", dateTo)
		if err == nil {
			filter.EndDate = &parsedDate
		}
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter.Limit = limit
	filter.Offset = offset

	appointments, total, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, appointments, total, page, limit)
}

// @Summary Сменить статус записи
// @Description Переводит запись в новый статус по машине состояний
// @Tags Записи
// @Accept json
// @Produce json
// @Param id path string true "ID записи"
// @Param input body domain.UpdateAppointmentStatusDTO true "Целевой статус"
// @Success 200 {object} domain.Appointment "Обновленная запись"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Failure 409 {object} errorResponseBody "Недопустимый переход или закрытое окно отмены"
// @Security ApiKeyAuth
// @Router /appointments/{id}/status [patch]
func (h *Handler) updateAppointmentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var req domain.UpdateAppointmentStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	allowed, err := h.appointmentAccess(c, appointment)
	if err != nil {
		h.logger.Error("ошибка проверки доступа к записи", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if !allowed {
		forbiddenResponse(c)
		return
	}

	role, _ := getUserRole(c)

	updated, err := h.services.Appointment.UpdateStatus(c.Request.Context(), id, req.Status, role, time.Now())
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, updated)
}

// @Summary Привязать видеокомнату
// @Description Сохраняет идентификатор видеокомнаты для начинающегося приема
// @Tags Записи
// @Accept json
// @Produce json
// @Param id path string true "ID записи"
// @Param input body domain.SetVideoRoomDTO true "Идентификатор видеокомнаты"
// @Success 200 {object} domain.Appointment "Обновленная запись"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Failure 409 {object} errorResponseBody "Статус записи не допускает видеокомнату"
// @Security ApiKeyAuth
// @Router /appointments/{id}/video-room [patch]
func (h *Handler) setAppointmentVideoRoom(c *gin.Context) {
	role, _ := getUserRole(c)
	if role != domain.UserRolePractitioner {
		forbiddenResponse(c, "видеокомнату назначает специалист")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	var req domain.SetVideoRoomDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	allowed, err := h.appointmentAccess(c, appointment)
	if err != nil {
		h.logger.Error("ошибка проверки доступа к записи", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if !allowed {
		forbiddenResponse(c)
		return
	}

	updated, err := h.services.Appointment.SetVideoRoom(c.Request.Context(), id, req.VideoRoomID)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, updated)
}

// @Summary Отменить запись
// @Description Отменяет запись; пациенту отмена доступна до закрытия окна отмены
// @Tags Записи
// @Produce json
// @Param id path string true "ID записи"
// @Success 200 {object} domain.Appointment "Отмененная запись"
// @Failure 400 {object} errorResponseBody "Неверный формат ID"
// @Failure 401 {object} errorResponseBody "Не авторизован"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Failure 409 {object} errorResponseBody "Недопустимый переход или закрытое окно отмены"
// @Security ApiKeyAuth
// @Router /appointments/{id} [delete]
func (h *Handler) cancelAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequestResponse(c, "неверный формат ID")
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	allowed, err := h.appointmentAccess(c, appointment)
	if err != nil {
		h.logger.Error("ошибка проверки доступа к записи", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}
	if !allowed {
		forbiddenResponse(c)
		return
	}

	role, _ := getUserRole(c)

	cancelled, err := h.services.Appointment.Cancel(c.Request.Context(), id, role, time.Now())
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, cancelled)
}

// appointmentAccess разрешает доступ только участникам записи: пациенту
// или специалисту, к которому она относится.
func (h *Handler) appointmentAccess(c *gin.Context, appointment *domain.Appointment) (bool, error) {
	userID, err := getUserID(c)
	if err != nil {
		return false, err
	}

	role, err := getUserRole(c)
	if err != nil {
		return false, err
	}

	if role == domain.UserRolePatient {
		return appointment.PatientID == userID, nil
	}

	practitioner, err := h.services.Practitioner.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return practitioner.ID == appointment.PractitionerID, nil
}
