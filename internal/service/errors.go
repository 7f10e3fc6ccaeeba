package service

import "errors"

// 业务错误定义，处理器层统一映射为响应码
var (
	ErrUnauthenticated   = errors.New("authentication required")
	ErrAlreadyExists     = errors.New("already exists")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrFormInvalid       = errors.New("form invalid")
	ErrPaymentDeclined   = errors.New("payment declined")
	ErrPersistence       = errors.New("persistence failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrUserDisabled      = errors.New("user disabled")
	ErrWeakPassword      = errors.New("password too weak")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)
