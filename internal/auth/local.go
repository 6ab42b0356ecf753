package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studyai-server/internal/models"
)

// LocalProvider backs the auth endpoints with bcrypt-hashed users in the
// database and self-issued HS256 tokens. Used when no remote auth provider
// is configured.
type LocalProvider struct {
	repo      *Repository
	jwtSecret []byte
}

func NewLocalProvider(repo *Repository, jwtSecret string) *LocalProvider {
	return &LocalProvider{repo: repo, jwtSecret: []byte(jwtSecret)}
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*ProviderResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	if err := p.repo.CreateUser(ctx, user); err != nil {
		return resultJSON(http.StatusBadRequest, map[string]string{
			"error": "email already registered",
		})
	}

	return resultJSON(http.StatusCreated, map[string]any{
		"id":    user.ID,
		"email": user.Email,
	})
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*ProviderResult, error) {
	user, err := p.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidCredentials()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return invalidCredentials()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(p.jwtSecret)
	if err != nil {
		return nil, err
	}

	return resultJSON(http.StatusOK, map[string]any{
		"access_token": signed,
		"token_type":   "bearer",
		"user": map[string]any{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

func invalidCredentials() (*ProviderResult, error) {
	return resultJSON(http.StatusUnauthorized, map[string]string{
		"error": "invalid credentials",
	})
}
