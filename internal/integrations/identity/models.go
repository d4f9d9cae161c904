package identity

import "github.com/m04kA/SMC-ClinicReservationService/internal/domain"

// User модель пользователя из сервиса идентификации
type User struct {
	ID    string `json:"id"`
	Role  string `json:"role"` // client, staff, admin
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ToDomain конвертирует ответ в доменную модель
func (u *User) ToDomain() *domain.User {
	return &domain.User{
		ID:    u.ID,
		Role:  domain.Role(u.Role),
		Email: u.Email,
		Name:  u.Name,
	}
}
