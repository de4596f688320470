package model

import "github.com/golang-jwt/jwt/v5"

// AccessClaims carries the caller identity in the token subject.
type AccessClaims struct {
	jwt.RegisteredClaims
}
