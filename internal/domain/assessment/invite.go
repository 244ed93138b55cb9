package assessment

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// InviteClaims binds an invitation link to one employee assessment within
// one tenant. Tokens are bearer credentials for filling in a single
// assessment; they carry no session semantics.
type InviteClaims struct {
	AssessmentID string `json:"aid"`
	TenantID     string `json:"tid"`
	Email        string `json:"email"`
	jwt.RegisteredClaims
}

func GenerateInviteToken(secret string, claims InviteClaims, ttl time.Duration) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseInviteToken(secret, tokenString string) (*InviteClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &InviteClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*InviteClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
