package service

import "errors"

// Ошибки уровня сервисов; обработчики переводят их в HTTP-статусы через errors.Is
var (
	ErrInvalidUUID         = errors.New("неверный формат UUID")
	ErrKidNotFound         = errors.New("ученик не найден")
	ErrFolderNotConfigured = errors.New("папка ученика не настроена")
	ErrNoFile              = errors.New("файл не передан")
	ErrInvalidCredentials  = errors.New("неверный email или пароль")
	ErrUserNotFound        = errors.New("пользователь не найден")
)
