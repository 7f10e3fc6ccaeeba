package service

import (
	"unicode"

	"github.com/shopora-next/internal/config"
)

// passwordPolicyError 携带具体原因，errors.Is 归一到 ErrWeakPassword
type passwordPolicyError struct {
	reason string
}

func (e passwordPolicyError) Error() string {
	return e.reason
}

func (e passwordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword
}

// validatePassword 按配置校验口令强度，长度按 rune 计数。
// 空策略（未设置任何要求）放行一切。
func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if policy.MinLength > 0 && len([]rune(password)) < policy.MinLength {
		return passwordPolicyError{reason: "password too short"}
	}

	classes := classifyPassword(password)
	checks := []struct {
		required bool
		present  bool
		reason   string
	}{
		{policy.RequireUpper, classes.upper, "password requires an uppercase letter"},
		{policy.RequireLower, classes.lower, "password requires a lowercase letter"},
		{policy.RequireNumber, classes.number, "password requires a digit"},
		{policy.RequireSpecial, classes.special, "password requires a special character"},
	}
	for _, check := range checks {
		if check.required && !check.present {
			return passwordPolicyError{reason: check.reason}
		}
	}
	return nil
}

type passwordClasses struct {
	upper   bool
	lower   bool
	number  bool
	special bool
}

func classifyPassword(password string) passwordClasses {
	var classes passwordClasses
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			classes.upper = true
		case unicode.IsLower(r):
			classes.lower = true
		case unicode.IsDigit(r):
			classes.number = true
		default:
			classes.special = true
		}
	}
	return classes
}
