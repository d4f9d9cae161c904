package scheduling

import "errors"

var (
	// ErrInvalidWindow возвращается, когда время окончания не позже времени начала
	ErrInvalidWindow = errors.New("scheduling: end time must be after start time")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("scheduling: invalid time format")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("scheduling: invalid date")

	// ErrOutsideBusinessHours возвращается, когда интервал вне рабочего времени клиники
	ErrOutsideBusinessHours = errors.New("scheduling: reservation is outside business hours")

	// ErrTimeBlocked возвращается, когда интервал попадает на заблокированное время
	ErrTimeBlocked = errors.New("scheduling: time is blocked")

	// ErrEmployeeConflict возвращается, когда у сотрудника уже есть бронирование в это время
	ErrEmployeeConflict = errors.New("scheduling: employee is already reserved at this time")

	// ErrRequesterNotFound возвращается, когда инициатор запроса не найден
	ErrRequesterNotFound = errors.New("scheduling: requester not found")

	// ErrClientNotFound возвращается, когда указанный клиент не найден
	ErrClientNotFound = errors.New("scheduling: client not found")

	// ErrInvalidClient возвращается, когда указанный пользователь не является клиентом
	ErrInvalidClient = errors.New("scheduling: user is not a client")

	// ErrAnimalNotFound возвращается, когда животное не найдено
	ErrAnimalNotFound = errors.New("scheduling: animal not found")

	// ErrAnimalNotOwned возвращается, когда животное не принадлежит клиенту
	ErrAnimalNotOwned = errors.New("scheduling: animal does not belong to client")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("scheduling: employee not found")

	// ErrInvalidEmployee возвращается, когда у пользователя нет подходящей роли сотрудника
	ErrInvalidEmployee = errors.New("scheduling: user cannot be assigned as employee")

	// ErrConcurrentModification возвращается при конфликте сериализации транзакций
	ErrConcurrentModification = errors.New("scheduling: concurrent modification, retry the request")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("scheduling: internal error")
)
