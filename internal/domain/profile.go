package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role роль пользователя
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid возвращает true для известной роли
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Profile профиль пользователя
// Аутентификацией владеет внешний шлюз, здесь хранятся только данные профиля и роль
type Profile struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Role      Role
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin возвращает true для администратора
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
