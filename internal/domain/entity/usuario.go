package entity

import "time"

// Usuario representa um usuário do sistema.
// ResetToken e ResetTokenExpira formam uma credencial de uso único para
// recuperação de senha: ou ambos preenchidos ou ambos nulos, nunca um só.
type Usuario struct {
	ID               string
	Nome             string
	Email            string
	SenhaHash        string // bcrypt, nunca senha em texto após persistir
	ResetToken       *string
	ResetTokenExpira *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
