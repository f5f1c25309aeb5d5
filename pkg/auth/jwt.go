package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// Account roles carried in the token.
const (
	RoleUser   = "user"
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

// Account kinds for regular users.
const (
	KindIndividual = "individual"
	KindLegal      = "legal"
)

// TokenTTL is the fixed lifetime of an issued token. There is no refresh
// mechanism; expired callers log in again.
const TokenTTL = time.Hour

type JWTServiceInterface interface {
	GenerateJWT(claims Claims, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("your-secret-key")

// SetSecret replaces the signing key. Called once at startup from config.
func SetSecret(secret string) {
	if secret != "" {
		secretKey = []byte(secret)
	}
}

type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Kind     string `json:"user_type,omitempty"`
	Country  string `json:"country,omitempty"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(claims Claims, expirationTime time.Time) (string, error) {
	claims.StandardClaims = jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		Issuer:    "tollgate",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 || claims.Issuer != "tollgate" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
