package auth

import "context"

// PasswordHasher abstrai o hash lento de senha (bcrypt na infraestrutura),
// com fator de trabalho configurável.
type PasswordHasher interface {
	Hash(senha string) (string, error)
	// Compare retorna erro se a senha não corresponde ao hash.
	Compare(hash, senha string) error
}

// EmailSender abstrai o envio do código de recuperação por e-mail.
type EmailSender interface {
	EnviarCodigoRecuperacao(ctx context.Context, para, nome, codigo string) error
}
