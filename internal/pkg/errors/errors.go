package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrUnprocessable используется, когда операция не выполнена по неожиданной
	// причине (сбой хранилища и т.п.). Широкий catch-all: причина логируется
	// на сервере и не раскрывается клиенту.
	ErrUnprocessable = errors.New("unprocessable")
)
