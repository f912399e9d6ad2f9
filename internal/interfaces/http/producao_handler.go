package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zerowaste/estoque-api/internal/application/dto"
	"github.com/zerowaste/estoque-api/internal/application/producao"
	"github.com/zerowaste/estoque-api/internal/domain"
)

// ProducaoHandler atende as requisições HTTP de produção (consumo de estoque).
type ProducaoHandler struct {
	uc *producao.UseCase
}

// NewProducaoHandler constrói o handler.
func NewProducaoHandler(uc *producao.UseCase) *ProducaoHandler {
	return &ProducaoHandler{uc: uc}
}

// Listar godoc
// @Summary      Histórico de produções (mais recentes primeiro)
// @Tags         producao
// @Produce      json
// @Success      200  {array}  dto.ProducaoResponse
// @Router       /producao [get]
func (h *ProducaoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Erro ao buscar histórico."})
	}
	return c.JSON(out)
}

// Registrar godoc
// @Summary      Registrar produção e baixar estoque
// @Tags         producao
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarProducaoRequest  true  "produtoId e quantidade"
// @Success      201   {object}  dto.ProducaoCriadaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /producao [post]
func (h *ProducaoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.CriarProducaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Selecione um produto e informe a quantidade."})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Produto não encontrado."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Erro interno ao processar produção."})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProducaoCriadaResponse{
		Message:   producao.MsgRegistrada,
		NovoSaldo: out.NovoSaldo,
	})
}

// Excluir godoc
// @Summary      Excluir produção, com estorno opcional (?devolver=true)
// @Tags         producao
// @Produce      json
// @Param        id        path   string  true   "ID da produção"
// @Param        devolver  query  bool    false  "devolver quantidade ao estoque"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /producao/{id} [delete]
func (h *ProducaoHandler) Excluir(c *fiber.Ctx) error {
	id := c.Params("id")
	devolver := c.Query("devolver") == "true"

	msg, err := h.uc.Excluir(c.Context(), id, devolver)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Registro não encontrado."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Erro interno."})
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}
