package repository

import "github.com/zerowaste/estoque-api/internal/domain/entity"

// ProducaoRepository define o porto de persistência para Producao (DIP).
type ProducaoRepository interface {
	Create(producao *entity.Producao) error
	GetByID(id string) (*entity.Producao, error)
	// List devolve o histórico de produções, mais recentes primeiro.
	List() ([]*entity.Producao, error)
	Delete(id string) error
}
