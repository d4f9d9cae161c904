package get_available_slots

import (
	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

// freeSlots генерирует слоты рабочего дня с шагом granularity и убирает занятые.
//
// Слот занят, если окно [slot - granularity, slot + granularity] пересекается
// с активным бронированием. Пересечение строгое: бронирование, которое
// заканчивается ровно на границе окна, слот не занимает.
//
// Примеры (шаг 30 минут, бронирование 10:00-10:30):
// - 09:30 → окно 09:00-10:00, граничит → свободен
// - 10:00 → окно 09:30-10:30 → занят
// - 10:30 → окно 10:00-11:00 → занят
// - 11:00 → окно 10:30-11:30, граничит → свободен
func freeSlots(hours domain.BusinessHours, granularity int, reservations []*domain.Reservation) []types.TimeString {
	result := make([]types.TimeString, 0)

	for slot := range domain.GenerateTimeSlots(hours.Open, hours.Close, granularity) {
		if !isOccupied(slot, granularity, reservations) {
			result = append(result, slot)
		}
	}

	return result
}

// isOccupied проверяет пересечение окна слота с активными бронированиями
func isOccupied(slot types.TimeString, granularity int, reservations []*domain.Reservation) bool {
	window := domain.TimeWindow{
		Start: slot.MinusMinutes(granularity),
		End:   slot.PlusMinutes(granularity),
	}

	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		if r.Window().Overlaps(window) {
			return true
		}
	}

	return false
}
