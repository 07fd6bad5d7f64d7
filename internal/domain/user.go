package domain

import (
	"time"

	"github.com/google/uuid"
)

// User — справочная проекция пользователя из внешнего провайдера
// идентичности. Ядро читает идентификатор и роль, учетными данными
// не управляет.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Role        UserRole  `json:"user_type"`
	State       string    `json:"state"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UserRole string

const (
	UserRolePatient      UserRole = "patient"
	UserRolePractitioner UserRole = "practitioner"
)

func (r UserRole) IsValid() bool {
	return r == UserRolePatient || r == UserRolePractitioner
}
