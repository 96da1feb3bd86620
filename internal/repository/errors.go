package repository

import "errors"

// Ошибки уровня хранилища. Обработчики сопоставляют их
// с HTTP-статусами через errors.Is.
var (
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrPostNotFound       = errors.New("пост не найден")
	ErrEmailTaken         = errors.New("email уже используется")
	ErrInvalidCredentials = errors.New("неверный логин или пароль")
)
