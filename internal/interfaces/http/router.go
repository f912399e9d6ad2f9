package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zerowaste/estoque-api/internal/application/auth"
	"github.com/zerowaste/estoque-api/internal/application/producao"
	"github.com/zerowaste/estoque-api/internal/application/produto"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	ProdutoUC  *produto.UseCase
	ProducaoUC *producao.UseCase
	AuthUC     *auth.UseCase
	ResetUC    *auth.PasswordResetUseCase
	JWTSecret  string
}

// Router registra as rotas da API. Os caminhos são os mesmos do app mobile:
// /produtos, /producao e /auth/*, sem prefixo de versão.
func Router(app *fiber.App, deps RouterDeps) {
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos := app.Group("/produtos")
	produtos.Get("/", produtoHandler.Listar)
	produtos.Post("/", produtoHandler.Criar)

	producaoHandler := NewProducaoHandler(deps.ProducaoUC)
	producoes := app.Group("/producao")
	producoes.Get("/", producaoHandler.Listar)
	producoes.Post("/", producaoHandler.Registrar)
	producoes.Delete("/:id", producaoHandler.Excluir)

	authHandler := NewAuthHandler(deps.AuthUC, deps.ResetUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/registrar", authHandler.Registrar)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/esqueci-senha", authHandler.EsqueciSenha)
	authGroup.Post("/redefinir-senha", authHandler.RedefinirSenha)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
}
