package transfer

import "github.com/golang-jwt/jwt/v5"

type AdminClaims struct {
	jwt.RegisteredClaims
}
