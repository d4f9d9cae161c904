package models

import (
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

// CreateBlockedTimeRequest запрос на блокировку интервала
type CreateBlockedTimeRequest struct {
	RequesterID string  `json:"-"`
	Date        string  `json:"date"`      // "2024-06-03" или RFC3339
	TimeStart   string  `json:"timeStart"` // "HH:mm" или "HH:mm:ss"
	TimeEnd     string  `json:"timeEnd"`
	Reason      *string `json:"reason,omitempty"`
}

// BlockedTimeResponse ответ с данными блокировки
type BlockedTimeResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	TimeStart string    `json:"timeStart"`
	TimeEnd   string    `json:"timeEnd"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedTimeListResponse ответ со списком блокировок
type BlockedTimeListResponse struct {
	BlockedTimes []BlockedTimeResponse `json:"blockedTimes"`
}

// FromDomainBlockedTime конвертирует domain модель в DTO
func FromDomainBlockedTime(b *domain.BlockedTime) *BlockedTimeResponse {
	if b == nil {
		return nil
	}

	return &BlockedTimeResponse{
		ID:        b.ID,
		Date:      domain.FormatDate(b.Date),
		TimeStart: b.TimeStart.String(),
		TimeEnd:   b.TimeEnd.String(),
		Start:     b.Start,
		End:       b.End,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockedTimeList конвертирует список domain моделей в DTO
func FromDomainBlockedTimeList(items []*domain.BlockedTime) *BlockedTimeListResponse {
	resp := &BlockedTimeListResponse{
		BlockedTimes: make([]BlockedTimeResponse, 0, len(items)),
	}
	for _, b := range items {
		if item := FromDomainBlockedTime(b); item != nil {
			resp.BlockedTimes = append(resp.BlockedTimes, *item)
		}
	}
	return resp
}
