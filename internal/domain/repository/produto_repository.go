package repository

import (
	"github.com/shopspring/decimal"
	"github.com/zerowaste/estoque-api/internal/domain/entity"
)

// ProdutoRepository define o porto de persistência para Produto (DIP).
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	List() ([]*entity.Produto, error)
	// AjustarQuantidade aplica um delta relativo ao saldo (quantidade = quantidade + delta)
	// avaliado pelo banco, e devolve o saldo resultante. Delta negativo = baixa.
	// Retorna ErrNotFound se o produto não existe.
	AjustarQuantidade(id string, delta decimal.Decimal) (decimal.Decimal, error)
}
