package profiles

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profile not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidRole возвращается при неизвестной роли
	ErrInvalidRole = errors.New("invalid role")

	// ErrSelfDemotion возвращается при попытке администратора снять роль с самого себя
	ErrSelfDemotion = errors.New("admin cannot change own role")

	// ErrUnsupportedImage возвращается при неподдерживаемом типе изображения
	ErrUnsupportedImage = errors.New("unsupported image type")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
