package helper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nomad_admin/config"
	"nomad_admin/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Authenticate checks the admin credentials configured in ADMIN_EMAIL and
// ADMIN_PASSWORD_HASH.
func Authenticate(email, password string) (model.TokenClaim, error) {
	adminEmail := config.Config("ADMIN_EMAIL")
	hash := config.Config("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || hash == "" {
		return model.TokenClaim{}, errors.New("admin credentials are not configured")
	}
	if !strings.EqualFold(strings.TrimSpace(email), adminEmail) || !CheckPasswordHash(password, hash) {
		return model.TokenClaim{}, ErrInvalidCredentials
	}
	return model.TokenClaim{Email: adminEmail}, nil
}

func SessionTTL() time.Duration {
	return time.Duration(config.Int("SESSION_TTL_MINUTES", 480)) * time.Minute
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["email"] = tokenClaim.Email
	claims["jti"] = uuid.NewString()
	claims["exp"] = time.Now().Add(SessionTTL()).Unix()

	return token.SignedString(jwtSecret())
}

func ParseAccessToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// RevokeToken blocks a session until it would have expired anyway.
func RevokeToken(ctx context.Context, claims jwt.MapClaims) error {
	if Revocations == nil {
		return nil
	}
	jti, _ := claims["jti"].(string)
	exp, err := claims.GetExpirationTime()
	if jti == "" || err != nil || exp == nil {
		return nil
	}
	return Revocations.Revoke(ctx, jti, time.Until(exp.Time))
}

func IsRevoked(ctx context.Context, claims jwt.MapClaims) (bool, error) {
	if Revocations == nil {
		return false, nil
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return false, nil
	}
	return Revocations.Revoked(ctx, jti)
}
