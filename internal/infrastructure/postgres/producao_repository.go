package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zerowaste/estoque-api/internal/domain/entity"
	"github.com/zerowaste/estoque-api/internal/domain/repository"
)

var _ repository.ProducaoRepository = (*ProducaoRepo)(nil)

// ProducaoRepo implementação do porto ProducaoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProducaoRepo struct {
	q Querier
}

// NewProducaoRepository constrói o adaptador de persistência de produções. Passar pool ou tx (Querier).
func NewProducaoRepository(q Querier) *ProducaoRepo {
	return &ProducaoRepo{q: q}
}

// Create persiste um novo registro de produção.
func (r *ProducaoRepo) Create(p *entity.Producao) error {
	query := `
		INSERT INTO producoes (id, produto_id, nome_produto, quantidade, data_producao, observacao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ProdutoID, p.NomeProduto, p.Quantidade, p.DataProducao, p.Observacao, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert producao: %w", err)
	}
	return nil
}

// GetByID obtém uma produção por ID.
func (r *ProducaoRepo) GetByID(id string) (*entity.Producao, error) {
	query := `
		SELECT id, produto_id, nome_produto, quantidade, data_producao, observacao, created_at
		FROM producoes WHERE id = $1`
	var p entity.Producao
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProdutoID, &p.NomeProduto, &p.Quantidade, &p.DataProducao, &p.Observacao, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producao: %w", err)
	}
	return &p, nil
}

// List lista o histórico de produções, mais recentes primeiro.
func (r *ProducaoRepo) List() ([]*entity.Producao, error) {
	query := `
		SELECT id, produto_id, nome_produto, quantidade, data_producao, observacao, created_at
		FROM producoes ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list producoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producao
	for rows.Next() {
		var p entity.Producao
		if err := rows.Scan(&p.ID, &p.ProdutoID, &p.NomeProduto, &p.Quantidade,
			&p.DataProducao, &p.Observacao, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan producao: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete exclui uma produção por ID.
func (r *ProducaoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM producoes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producao: %w", err)
	}
	return nil
}
