package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/zerowaste/estoque-api/internal/domain"
	"github.com/zerowaste/estoque-api/internal/domain/entity"
	"github.com/zerowaste/estoque-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de persistência de usuários.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um novo usuário.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nome, email, senha_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nome, u.Email, u.SenhaHash, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.find(`WHERE id = $1`, id)
}

// GetByEmail obtém um usuário por e-mail.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.find(`WHERE email = $1`, email)
}

func (r *UsuarioRepo) find(where string, arg any) (*entity.Usuario, error) {
	query := `
		SELECT id, nome, email, senha_hash, reset_token, reset_token_expira, created_at, updated_at
		FROM usuarios ` + where
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.ResetToken, &u.ResetTokenExpira,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// SalvarResetToken grava token + expiração num único statement, sobrescrevendo
// qualquer token anterior. Os dois campos nunca divergem.
func (r *UsuarioRepo) SalvarResetToken(id, token string, expira time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET reset_token = $2, reset_token_expira = $3, updated_at = now() WHERE id = $1`,
		id, token, expira,
	)
	if err != nil {
		return fmt.Errorf("salvar reset token: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// RedefinirSenha grava o novo hash e limpa token + expiração no mesmo statement
// (consumo de uso único).
func (r *UsuarioRepo) RedefinirSenha(id, senhaHash string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET senha_hash = $2, reset_token = NULL, reset_token_expira = NULL, updated_at = now() WHERE id = $1`,
		id, senhaHash,
	)
	if err != nil {
		return fmt.Errorf("redefinir senha: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
