package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

const tokenTTL = 12 * time.Hour

// Claims carries the admin identity and role. The role travels in the token so
// routing never has to guess it from the path.
type Claims struct {
	AdminID int    `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsSuperAdmin() bool {
	return c.Role == RoleSuperAdmin
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

func IssueToken(secret string, adminID int, email, role string, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret not set")
	}
	claims := Claims{
		AdminID: adminID,
		Email:   email,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || !ValidRole(claims.Role) {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
