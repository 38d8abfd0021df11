package auth

import (
	"time"

	"comanda-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type JWTCustomClaims struct {
	UserID uint            `json:"user_id"`
	Name   string          `json:"name"`
	Roles  models.RoleList `json:"roles"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, user *models.User) (string, error) {
	roles := user.Roles
	// admin enxerga todos os painéis
	if roles.Has(models.RoleAdmin) {
		roles = models.AllRoles
	}

	claims := &JWTCustomClaims{
		UserID: user.ID,
		Name:   user.Name,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // 1 dia
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
