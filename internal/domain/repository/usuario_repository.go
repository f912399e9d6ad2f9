package repository

import (
	"time"

	"github.com/zerowaste/estoque-api/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario (DIP).
// As operações de reset token atualizam os dois campos (token + expiração)
// num único statement para manter o par sempre consistente.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	// SalvarResetToken grava token + expiração, sobrescrevendo qualquer token
	// anterior ainda não consumido (no máximo um token vivo por usuário).
	SalvarResetToken(id, token string, expira time.Time) error
	// RedefinirSenha grava o novo hash e limpa token + expiração (uso único).
	RedefinirSenha(id, senhaHash string) error
}
