package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Skotchmaster/food_delivery/internal/hash"
	"github.com/Skotchmaster/food_delivery/internal/models"
	"github.com/Skotchmaster/food_delivery/internal/repo"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const accessTokenTTL = 15 * time.Minute

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password required", ErrValidation)
	}

	if _, err := svc.Repo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeError(err)
	}

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         "user",
	}
	created, err := svc.Repo.CreateUser(ctx, user)
	if err != nil {
		return nil, storeError(err)
	}
	return created, nil
}

func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password required", ErrValidation)
	}

	user, err := svc.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", storeError(err)
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, "", fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	token, err := svc.CreateAccessToken(user, time.Now().Add(accessTokenTTL))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (svc *AuthService) CreateAccessToken(user *models.User, exp time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.UserID.String(),
		"role": user.Role,
		"iat":  time.Now().Unix(),
		"exp":  exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(svc.JWTSecret)
}
