package domain

import "errors"

var (
	ErrInvalidRange             = errors.New("некорректный диапазон дат или времени")
	ErrNoAvailabilityConfigured = errors.New("у специалиста не настроено расписание приема")
	ErrOutsideAvailability      = errors.New("запрошенное время вне расписания приема")
	ErrSlotTooSoon              = errors.New("до начала слота осталось слишком мало времени")
	ErrSlotAlreadyBooked        = errors.New("выбранный слот времени уже занят")
	ErrSlotBeingBooked          = errors.New("слот бронируется другим пациентом, повторите попытку")
	ErrInvalidStateTransition   = errors.New("недопустимый переход статуса записи")
	ErrCancellationWindowClosed = errors.New("окно отмены записи закрыто")
	ErrNotFound                 = errors.New("запись не найдена")
	ErrStorageUnavailable       = errors.New("хранилище временно недоступно")
)
