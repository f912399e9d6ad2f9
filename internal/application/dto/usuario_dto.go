package dto

// RegistrarRequest entrada para registro de usuário (senha em texto, o use case hasheia).
type RegistrarRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// RegistradoResponse saída do registro: identificação sem dados sensíveis.
type RegistradoResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse saída do login. Token JWT para as rotas autenticadas;
// a senha (ou hash) nunca aparece aqui.
type LoginResponse struct {
	ID      string `json:"id"`
	Nome    string `json:"nome"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// EsqueciSenhaRequest entrada para iniciar a recuperação de senha.
type EsqueciSenhaRequest struct {
	Email string `json:"email"`
}

// RedefinirSenhaRequest entrada para concluir a recuperação com o código recebido.
type RedefinirSenhaRequest struct {
	Email     string `json:"email"`
	Token     string `json:"token"`
	NovaSenha string `json:"novaSenha"`
}

// MeResponse saída de GET /auth/me.
type MeResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}
