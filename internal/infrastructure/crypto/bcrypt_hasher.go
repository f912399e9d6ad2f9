package crypto

import (
	"github.com/zerowaste/estoque-api/internal/application/auth"
	"golang.org/x/crypto/bcrypt"
)

var _ auth.PasswordHasher = (*BcryptHasher)(nil)

// BcryptHasher implementa o porto PasswordHasher com bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constrói o hasher. Custo fora da faixa válida cai no default do bcrypt.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash gera o hash bcrypt da senha.
func (h *BcryptHasher) Hash(senha string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(senha), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare retorna erro se a senha não corresponde ao hash.
func (h *BcryptHasher) Compare(hash, senha string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
}
