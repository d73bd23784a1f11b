package auth

import (
	"context"
	"os"
	"time"

	autherrors "github.com/Zamy17/absensi-karyawan/internal/auth/errors"
	"github.com/Zamy17/absensi-karyawan/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(ctx context.Context, email, password string) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	RoleOf(ctx context.Context, userID, email string) string
}

type service struct {
	repo          user.Repository
	emailFallback bool
	logger        *zap.Logger
}

// NewService membuat auth service. emailFallback mengaktifkan penentuan
// peran berbasis pola email saat lookup ke database gagal
// (ROLE_EMAIL_FALLBACK=true).
func NewService(repo user.Repository, emailFallback bool, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, emailFallback: emailFallback, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	if !u.IsActive {
		return TokenResponse{}, autherrors.ErrInactiveAccount
	}

	role := s.RoleOf(ctx, u.ID.String(), u.Email)

	accessToken, err := s.generateToken(u.ID.String(), u.Name, role, time.Minute*15)
	if err != nil {
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(u.ID.String(), u.Name, role, time.Hour*24*7)
	if err != nil {
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: AuthResponse{
			ID:    u.ID.String(),
			Name:  u.Name,
			Email: u.Email,
			Role:  role,
		},
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return TokenResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, userID.String())
	if err != nil {
		return TokenResponse{}, autherrors.ErrUserNotFound
	}

	role := s.RoleOf(ctx, u.ID.String(), u.Email)

	newAccessToken, err := s.generateToken(u.ID.String(), u.Name, role, time.Minute*15)
	if err != nil {
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := s.generateToken(u.ID.String(), u.Name, role, time.Hour*24*7)
	if err != nil {
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return TokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
		User: AuthResponse{
			ID:    u.ID.String(),
			Name:  u.Name,
			Email: u.Email,
			Role:  role,
		},
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id.String())
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	return &AuthResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  s.RoleOf(ctx, u.ID.String(), u.Email),
	}, nil
}

// RoleOf menentukan peran user. Sumber otoritatif adalah kolom role di
// tabel users; fallback pola email hanya dipakai ketika lookup gagal
// atau role kosong, dan hanya bila fitur diaktifkan.
func (s *service) RoleOf(ctx context.Context, userID, email string) string {
	u, err := s.repo.FindByID(ctx, userID)
	if err == nil && u.Role != "" {
		return u.Role
	}

	if s.emailFallback {
		role := RoleFromEmail(email)
		s.logger.Warn("role lookup failed, using email-pattern fallback",
			zap.String("user_id", userID),
			zap.String("role", role),
			zap.Error(err),
		)
		return role
	}

	if err != nil {
		s.logger.Error("role lookup failed", zap.String("user_id", userID), zap.Error(err))
	}
	return user.RoleUser
}

func (s *service) generateToken(userID, name, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"name":    name,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
