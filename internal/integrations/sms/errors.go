package sms

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sms client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("sms client: invalid response")

	// ErrRejected шлюз отклонил сообщение (например, некорректный номер)
	ErrRejected = errors.New("sms client: message rejected")
)
