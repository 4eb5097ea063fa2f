package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated customer identity inside a token.
// The customer id travels in the registered subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// CustomerID parses the subject claim back into a customer id.
func (c *Claims) CustomerID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject claim: %w", err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid subject claim: zero id")
	}
	return uint(id), nil
}

type JWTService struct {
	secret   []byte
	expHours int
}

func NewJWTService(secret string, expHours int) *JWTService {
	if expHours <= 0 {
		expHours = 1
	}
	return &JWTService{
		secret:   []byte(secret),
		expHours: expHours,
	}
}

// Generate signs a token for the given customer id.
func (s *JWTService) Generate(customerID uint) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(customerID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify parses and validates a token string.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
