package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/food_delivery/internal/repo"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrValidation          = errors.New("validation")           // 400
	ErrUnauthorized        = errors.New("unauthorized")         // 401
	ErrInsufficientBalance = errors.New("insufficient balance") // 402
	ErrNotFound            = errors.New("not found")            // 404
	ErrConflict            = errors.New("conflict")             // 409
	ErrInvalidReference    = errors.New("invalid reference")    // 422
	ErrStorageUnavailable  = errors.New("storage unavailable")  // 503
)

// storeError переводит ошибки хранилища в доменные. Коды Postgres:
// 23503 — нарушение внешнего ключа, 23505 — дубликат, 40001/40P01 —
// сбой сериализации, класс 08 — проблемы соединения.
func storeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, repo.ErrInsufficientPoints) {
		return ErrInsufficientBalance
	}
	if errors.Is(err, repo.ErrUnknownFoodItem) {
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23503":
			return fmt.Errorf("%w: %s", ErrInvalidReference, pgErr.ConstraintName)
		case pgErr.Code == "23505":
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		case pgErr.Code == "40001" || pgErr.Code == "40P01":
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.Code)
		case strings.HasPrefix(pgErr.Code, "08"):
			return fmt.Errorf("%w: %s", ErrStorageUnavailable, pgErr.Code)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return err
}
