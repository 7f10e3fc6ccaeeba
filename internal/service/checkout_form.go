package service

import (
	"strings"

	"github.com/shopora-next/internal/constants"
)

// ShippingAddressInput 收货地址输入
type ShippingAddressInput struct {
	FullName      string `json:"full_name"`
	PhoneNumber   string `json:"phone_number"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Country       string `json:"country"`
}

// formValidationError 表单校验错误，携带首个不合法字段
type formValidationError struct {
	field  string
	reason string
}

func (e formValidationError) Error() string {
	if e.reason != "" {
		return e.field + ": " + e.reason
	}
	return e.field + " is required"
}

func (e formValidationError) Is(target error) bool {
	return target == ErrFormInvalid
}

// Field 返回不合法字段名
func (e formValidationError) Field() string {
	return e.field
}

// validateCheckoutForm 按字段顺序校验收货地址与支付方式，返回首个失败项
func validateCheckoutForm(address ShippingAddressInput, paymentMethod, upiID string) error {
	required := []struct {
		field string
		value string
	}{
		{"full_name", address.FullName},
		{"phone_number", address.PhoneNumber},
		{"street_address", address.StreetAddress},
		{"city", address.City},
		{"state", address.State},
		{"zip_code", address.ZipCode},
		{"country", address.Country},
	}
	for _, item := range required {
		if strings.TrimSpace(item.value) == "" {
			return formValidationError{field: item.field}
		}
	}

	method := strings.ToLower(strings.TrimSpace(paymentMethod))
	supported := false
	for _, candidate := range constants.SupportedPaymentMethods {
		if method == candidate {
			supported = true
			break
		}
	}
	if !supported {
		return formValidationError{field: "payment_method", reason: "unsupported payment method"}
	}
	if method == constants.PaymentMethodUPI && strings.TrimSpace(upiID) == "" {
		return formValidationError{field: "upi_id"}
	}
	return nil
}
