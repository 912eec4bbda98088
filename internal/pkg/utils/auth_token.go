package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ougirez/equipviz/internal/pkg/constants"
	"github.com/spf13/viper"
)

const authTokenTTL = 24 * time.Hour

// AuthTokenWrapper — полезная нагрузка auth-токена.
type AuthTokenWrapper struct {
	UserID int64
	Secret string
}

type authClaims struct {
	jwt.StandardClaims
	UserID int64  `json:"user_id"`
	Secret string `json:"secret,omitempty"`
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	claims := authClaims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(authTokenTTL).Unix(),
		},
		UserID: wrapper.UserID,
		Secret: wrapper.Secret,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
	if err != nil {
		return "", fmt.Errorf("failed to sign auth token: %w", err)
	}

	return signed, nil
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	var claims authClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil {
		return nil, constants.ErrUnauthorized
	}

	return &AuthTokenWrapper{UserID: claims.UserID, Secret: claims.Secret}, nil
}
