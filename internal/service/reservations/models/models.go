package models

import (
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID             string    `json:"id"`
	AnimalID       string    `json:"animalId"`
	ClientID       string    `json:"clientId"`
	EmployeeID     *string   `json:"employeeId,omitempty"`
	Date           string    `json:"date"`      // "2024-06-03"
	TimeStart      string    `json:"timeStart"` // "10:00"
	TimeEnd        string    `json:"timeEnd"`   // "10:30"
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Reason         *string   `json:"reason,omitempty"`
	Status         string    `json:"status"`
	RescheduleNote *string   `json:"rescheduleNote,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:             r.ID,
		AnimalID:       r.AnimalID,
		ClientID:       r.ClientID,
		EmployeeID:     r.EmployeeID,
		Date:           domain.FormatDate(r.Date),
		TimeStart:      r.TimeStart.String(),
		TimeEnd:        r.TimeEnd.String(),
		Start:          r.Start,
		End:            r.End,
		Reason:         r.Reason,
		Status:         string(r.Status),
		RescheduleNote: r.RescheduleNote,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}
