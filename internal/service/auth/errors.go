package auth

import "errors"

var (
	// ErrEmailExists возвращается при попытке зарегистрировать занятый email
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken возвращается при некорректном или просроченном токене
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
