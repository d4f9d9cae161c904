package animals

import "github.com/m04kA/SMC-ClinicReservationService/internal/domain"

// Animal модель животного из реестра
type Animal struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
}

// ToDomain конвертирует ответ в доменную модель
func (a *Animal) ToDomain() *domain.Animal {
	return &domain.Animal{
		ID:      a.ID,
		OwnerID: a.OwnerID,
		Name:    a.Name,
	}
}
