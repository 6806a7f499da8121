package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

// Principal аутентифицированный субъект запроса
// Аутентификацией владеет внешний шлюз, сервис получает готовую identity
// из заголовков и дальше передает её явно в каждую операцию
type Principal struct {
	UserID uuid.UUID
	Role   domain.Role
}

// IsAdmin возвращает true для администратора
func (p Principal) IsAdmin() bool {
	return p.Role == domain.RoleAdmin
}

// CanManageSpaces проверяет право управлять пространствами
func (p Principal) CanManageSpaces() bool {
	return p.IsAdmin()
}

// CanManageProfiles проверяет право управлять пользователями
func (p Principal) CanManageProfiles() bool {
	return p.IsAdmin()
}

// CanViewReports проверяет право просматривать отчёты
func (p Principal) CanViewReports() bool {
	return p.IsAdmin()
}

// CanAccessBooking проверяет доступ к бронированию:
// владелец видит своё, администратор - любое
func (p Principal) CanAccessBooking(ownerID uuid.UUID) bool {
	return p.IsAdmin() || p.UserID == ownerID
}

type ctxKey int

const principalKey ctxKey = iota

// WithPrincipal кладет principal в контекст запроса
// Используется только middleware; дальше по стеку principal передается явным аргументом
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext достает principal из контекста запроса
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
