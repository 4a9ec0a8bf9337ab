package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Operator é o único usuário que acessa a API de relatórios
type Operator struct {
	Username string `json:"user"`
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
