package auth

import (
	"github.com/dgrijalva/jwt-go"
)

// Claims is the JWT payload carried by every bearer token: the caller's
// identity plus standard expiry handling.
type Claims struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	ID       uint   `json:"id"`
	jwt.StandardClaims
}
