package service

import (
	"errors"
	"testing"

	"github.com/shopora-next/internal/config"
)

func TestValidatePasswordEmptyPolicy(t *testing.T) {
	if err := validatePassword(config.PasswordPolicyConfig{}, "anything"); err != nil {
		t.Fatalf("empty policy should accept any password, got: %v", err)
	}
}

func TestValidatePasswordMinLength(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 8}

	if err := validatePassword(policy, "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("short password expected ErrWeakPassword, got: %v", err)
	}
	if err := validatePassword(policy, "longenough"); err != nil {
		t.Fatalf("long enough password should pass, got: %v", err)
	}
	// 长度按字符数而非字节数计
	if err := validatePassword(policy, "密码密码密码密码"); err != nil {
		t.Fatalf("8 runes should satisfy min length 8, got: %v", err)
	}
}

func TestValidatePasswordCharacterClasses(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	cases := []struct {
		password string
		ok       bool
	}{
		{"Aa1!", true},
		{"aa1!", false},
		{"AA1!", false},
		{"Aaa!", false},
		{"Aa11", false},
	}
	for _, tc := range cases {
		err := validatePassword(policy, tc.password)
		if tc.ok && err != nil {
			t.Fatalf("password %q should pass, got: %v", tc.password, err)
		}
		if !tc.ok && !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q expected ErrWeakPassword, got: %v", tc.password, err)
		}
	}
}

func TestValidatePasswordReason(t *testing.T) {
	policy := config.PasswordPolicyConfig{RequireNumber: true}
	err := validatePassword(policy, "letters")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if err.Error() != "password requires a digit" {
		t.Fatalf("unexpected reason: %s", err.Error())
	}
}
