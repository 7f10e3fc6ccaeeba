package repository

import (
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"
)

func TestBuildLikeConditionByDialectSQLite(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("sqlite", []string{"name", "description"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	if condition != "name LIKE ? OR description LIKE ?" {
		t.Fatalf("sqlite condition mismatch, got %s", condition)
	}
}

func TestBuildLikeConditionByDialectPostgres(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("postgres", []string{"name"})
	if argCount != 1 {
		t.Fatalf("arg count want 1 got %d", argCount)
	}
	if !strings.Contains(condition, "name ILIKE ?") {
		t.Fatalf("postgres condition should use ILIKE, got %s", condition)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%test%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%test%" {
			t.Fatalf("args[%d] want %%test%% got %v", idx, arg)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Fatalf("nil should not be unique violation")
	}
	if !IsUniqueViolation(gorm.ErrDuplicatedKey) {
		t.Fatalf("gorm duplicated key should be unique violation")
	}
	if !IsUniqueViolation(errors.New("UNIQUE constraint failed: wishlist_items.user_id")) {
		t.Fatalf("sqlite unique constraint message should be unique violation")
	}
	if !IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "idx_wishlist_user_product"`)) {
		t.Fatalf("postgres duplicate key message should be unique violation")
	}
	if IsUniqueViolation(errors.New("connection refused")) {
		t.Fatalf("unrelated error should not be unique violation")
	}
}
