package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zerowaste/estoque-api/internal/application/dto"
	"github.com/zerowaste/estoque-api/internal/application/produto"
	"github.com/zerowaste/estoque-api/internal/domain"
)

// ProdutoHandler atende as requisições HTTP de produtos (estoque).
type ProdutoHandler struct {
	uc *produto.UseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *produto.UseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar produtos em estoque
// @Tags         produtos
// @Produce      json
// @Success      200  {array}  dto.ProdutoResponse
// @Router       /produtos [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Erro ao buscar produtos."})
	}
	return c.JSON(out)
}

// Criar godoc
// @Summary      Cadastrar recebimento de matéria-prima
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /produtos [post]
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Nome, Unidade e Quantidade são obrigatórios."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Não foi possível cadastrar o produto."})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
