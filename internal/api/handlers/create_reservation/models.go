package create_reservation

import (
	createReservation "github.com/m04kA/SMC-ClinicReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	AnimalID   string  `json:"animalId"`
	Date       string  `json:"date"`      // "2024-06-03"
	TimeStart  string  `json:"timeStart"` // "10:00"
	TimeEnd    string  `json:"timeEnd"`   // "10:30"
	Reason     *string `json:"reason,omitempty"`
	ClientID   *string `json:"clientId,omitempty"`
	EmployeeID *string `json:"employeeId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(requesterID string) *createReservation.Request {
	return &createReservation.Request{
		RequesterID: requesterID,
		AnimalID:    r.AnimalID,
		Date:        r.Date,
		TimeStart:   r.TimeStart,
		TimeEnd:     r.TimeEnd,
		Reason:      r.Reason,
		ClientID:    r.ClientID,
		EmployeeID:  r.EmployeeID,
	}
}
