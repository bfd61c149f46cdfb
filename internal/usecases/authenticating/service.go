package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pitch-api/infrastructure/repository"
	"github.com/vfg2006/creator-pitch-api/internal/config"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
	"github.com/vfg2006/creator-pitch-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type Authenticator interface {
	LoginUser(ctx context.Context, email, password string) (string, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	nowFn    func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		nowFn:    time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := generateJWT(user, s.cfg.SecretKey, s.nowFn())
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

// GetUserProfile devolve nil quando o usuário não existe
func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao buscar perfil do usuário")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	if user == nil {
		return nil, nil
	}

	user.PasswordHash = ""
	return user, nil
}

func generateJWT(user *domain.User, secretKey string, now time.Time) (string, error) {
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}
