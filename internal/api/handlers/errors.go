package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicReservationService/internal/service/notifications"
	"github.com/m04kA/SMC-ClinicReservationService/internal/service/scheduling"
)

const (
	msgInvalidWindow          = "время окончания должно быть позже времени начала"
	msgInvalidTime            = "некорректный формат времени, ожидается HH:mm"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgOutsideBusinessHours   = "бронирование вне рабочего времени клиники"
	msgTimeBlocked            = "выбранное время заблокировано"
	msgEmployeeConflict       = "у сотрудника уже есть бронирование на это время"
	msgRequesterNotFound      = "пользователь не найден"
	msgClientNotFound         = "клиент не найден"
	msgInvalidClient          = "указанный пользователь не является клиентом"
	msgAnimalNotFound         = "животное не найдено"
	msgAnimalNotOwned         = "животное не принадлежит клиенту"
	msgEmployeeNotFound       = "сотрудник не найден"
	msgInvalidEmployee        = "пользователь не может быть назначен сотрудником"
	msgConcurrentModification = "бронирование изменено параллельно, повторите запрос"
	msgNotificationFailed     = "изменения сохранены, но уведомление не отправлено"
)

// SchedulingErrors общие ошибки проверок расписания, которые use case'ы
// возвращают без обертки в собственные ошибки
var SchedulingErrors = []ErrorMapping{
	{Err: scheduling.ErrInvalidWindow, Status: http.StatusBadRequest, Message: msgInvalidWindow},
	{Err: scheduling.ErrInvalidTime, Status: http.StatusBadRequest, Message: msgInvalidTime},
	{Err: scheduling.ErrInvalidDate, Status: http.StatusBadRequest, Message: msgInvalidDate},
	{Err: scheduling.ErrOutsideBusinessHours, Status: http.StatusBadRequest, Message: msgOutsideBusinessHours},
	{Err: scheduling.ErrTimeBlocked, Status: http.StatusBadRequest, Message: msgTimeBlocked},
	{Err: scheduling.ErrEmployeeConflict, Status: http.StatusConflict, Message: msgEmployeeConflict},
	{Err: scheduling.ErrRequesterNotFound, Status: http.StatusNotFound, Message: msgRequesterNotFound},
	{Err: scheduling.ErrClientNotFound, Status: http.StatusNotFound, Message: msgClientNotFound},
	{Err: scheduling.ErrInvalidClient, Status: http.StatusBadRequest, Message: msgInvalidClient},
	{Err: scheduling.ErrAnimalNotFound, Status: http.StatusNotFound, Message: msgAnimalNotFound},
	{Err: scheduling.ErrAnimalNotOwned, Status: http.StatusBadRequest, Message: msgAnimalNotOwned},
	{Err: scheduling.ErrEmployeeNotFound, Status: http.StatusNotFound, Message: msgEmployeeNotFound},
	{Err: scheduling.ErrInvalidEmployee, Status: http.StatusBadRequest, Message: msgInvalidEmployee},
	{Err: scheduling.ErrConcurrentModification, Status: http.StatusConflict, Message: msgConcurrentModification},
	{Err: notifications.ErrNotificationFailed, Status: http.StatusBadGateway, Message: msgNotificationFailed},
}
