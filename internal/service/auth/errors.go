package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
