package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/zerowaste/estoque-api/internal/domain"
	"github.com/zerowaste/estoque-api/internal/domain/entity"
	"github.com/zerowaste/estoque-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência de produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto com o saldo recebido.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, nome, unidade_medida, quantidade, fornecedor, data_recebimento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.UnidadeMedida, p.Quantidade, p.Fornecedor, p.DataRecebimento,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `
		SELECT id, nome, unidade_medida, quantidade, fornecedor, data_recebimento, created_at, updated_at
		FROM produtos WHERE id = $1`
	var p entity.Produto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nome, &p.UnidadeMedida, &p.Quantidade, &p.Fornecedor, &p.DataRecebimento,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// List lista todos os produtos em ordem alfabética.
func (r *ProdutoRepo) List() ([]*entity.Produto, error) {
	query := `
		SELECT id, nome, unidade_medida, quantidade, fornecedor, data_recebimento, created_at, updated_at
		FROM produtos ORDER BY nome ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.UnidadeMedida, &p.Quantidade, &p.Fornecedor,
			&p.DataRecebimento, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AjustarQuantidade aplica o delta direto no banco (quantidade = quantidade + delta)
// e devolve o saldo resultante. Sem read-modify-write no cliente: dois ajustes
// concorrentes acumulam corretamente.
func (r *ProdutoRepo) AjustarQuantidade(id string, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE produtos SET quantidade = quantidade + $2, updated_at = now()
		WHERE id = $1
		RETURNING quantidade`
	var saldo decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(&saldo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("ajustar quantidade: %w", err)
	}
	return saldo, nil
}
