// Package auth verifies bearer tokens issued by the external identity
// provider. A token carries the provider-assigned uid, which is the key the
// user directory is looked up by.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rohithmohanan1/Notes/internal/common"
)

// Claims extends the registered claim set with the identity provider uid.
type Claims struct {
	jwt.RegisteredClaims
	UID string
}

// GenerateToken signs a token for the given uid with HS256. It is used by
// tests and by deployments that front the server without an external
// identity provider.
func GenerateToken(uid string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UID: uid,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUIDFromToken verifies the token signature and expiry and returns the
// uid it carries.
func GetUIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrorInvalidToken
	}

	return claims.UID, nil
}
