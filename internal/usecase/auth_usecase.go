package usecase

import (
	"context"
	"errors"
	"strings"

	"recruiter-pro/internal/pkg/jwt"
	"recruiter-pro/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (repository.Recruiter, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	recruiters repository.RecruiterRepository
	jwt        jwt.Service
}

func NewAuthUsecase(recruiters repository.RecruiterRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{recruiters: recruiters, jwt: jwtSvc}
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (repository.Recruiter, string, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return repository.Recruiter{}, "", "", ErrInvalidCredentials
	}

	rec, err := u.recruiters.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterNotFound) {
			return repository.Recruiter{}, "", "", ErrInvalidCredentials
		}
		return repository.Recruiter{}, "", "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(in.Password)); err != nil {
		return repository.Recruiter{}, "", "", ErrInvalidCredentials
	}

	access, err := u.jwt.GenerateAccessToken(rec.ID, rec.Email)
	if err != nil {
		return repository.Recruiter{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(rec.ID, rec.Email)
	if err != nil {
		return repository.Recruiter{}, "", "", ErrInternal
	}

	return rec, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	rec, err := u.recruiters.FindByEmail(ctx, claims.Email)
	if err != nil {
		return "", "", ErrUnauthorized
	}

	access, err := u.jwt.GenerateAccessToken(rec.ID, rec.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(rec.ID, rec.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}
