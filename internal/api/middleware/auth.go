package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaceService/internal/auth"
	"github.com/m04kA/SMC-SpaceService/internal/domain"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Auth извлекает identity пользователя из заголовков, проставленных шлюзом,
// и кладет Principal в контекст запроса
// Запросы без валидного X-User-ID отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(headerUserID)
		if rawID == "" {
			http.Error(w, `{"error":"missing X-User-ID header"}`, http.StatusUnauthorized)
			return
		}

		userID, err := uuid.Parse(rawID)
		if err != nil {
			http.Error(w, `{"error":"invalid X-User-ID header"}`, http.StatusUnauthorized)
			return
		}

		role := domain.Role(r.Header.Get(headerUserRole))
		if !role.IsValid() {
			role = domain.RoleUser
		}

		principal := auth.Principal{UserID: userID, Role: role}
		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}

// OptionalAuth проставляет Principal в контекст, если шлюз передал валидные
// заголовки, и пропускает запрос дальше анонимным в противном случае.
// Используется на публичных маршрутах, где администратор видит больше
// (например, неактивные пространства в каталоге)
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.Header.Get(headerUserID))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		role := domain.Role(r.Header.Get(headerUserRole))
		if !role.IsValid() {
			role = domain.RoleUser
		}

		principal := auth.Principal{UserID: userID, Role: role}
		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}

// RequireAdmin пропускает только администраторов
// Вешается на admin-подроутер после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := auth.FromContext(r.Context())
		if !ok {
			http.Error(w, `{"error":"unauthenticated"}`, http.StatusUnauthorized)
			return
		}
		if !principal.IsAdmin() {
			http.Error(w, `{"error":"admin access required"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
