package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"esquadrao_backend/internals/features/militares/model"
)

var (
	// Reordenar com filtro de busca ativo corromperia a antiguidade:
	// os índices da lista filtrada não batem com a ordem total.
	ErrFilterActive = errors.New("reordenação bloqueada enquanto houver filtro de busca ativo")

	ErrMilitarNotInRoster = errors.New("militar não encontrado no efetivo")
	ErrInvalidDirection   = errors.New("direção inválida (use up ou down)")
)

// SortRoster ordena por antiguidade crescente (nulos por último),
// desempate por nome.
func SortRoster(ms []model.MilitarModel) {
	sort.SliceStable(ms, func(i, j int) bool {
		a, b := ms[i].MilitarAntiguidade, ms[j].MilitarAntiguidade
		switch {
		case a == nil && b == nil:
			return ms[i].MilitarNome < ms[j].MilitarNome
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a < *b
		default:
			return ms[i].MilitarNome < ms[j].MilitarNome
		}
	})
}

// NextAntiguidade devolve max(antiguidade existente, 0) + 1.
func NextAntiguidade(ms []model.MilitarModel) int {
	max := 0
	for i := range ms {
		if a := ms[i].MilitarAntiguidade; a != nil && *a > max {
			max = *a
		}
	}
	return max + 1
}

// SwapPair é o par de registros cuja antiguidade será trocada.
// Nil quando a reordenação é um no-op (já está na ponta).
type SwapPair struct {
	A, B *model.MilitarModel
}

// PlanReorder calcula a troca de vizinhos sobre a lista JÁ ordenada.
// Não muta nada — a escrita (transacional) fica no controller.
func PlanReorder(ordered []model.MilitarModel, id uuid.UUID, direction, filter string) (*SwapPair, error) {
	if strings.TrimSpace(filter) != "" {
		return nil, ErrFilterActive
	}
	if direction != "up" && direction != "down" {
		return nil, ErrInvalidDirection
	}

	idx := -1
	for i := range ordered {
		if ordered[i].MilitarID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrMilitarNotInRoster
	}

	neighbor := idx - 1
	if direction == "down" {
		neighbor = idx + 1
	}
	if neighbor < 0 || neighbor >= len(ordered) {
		return nil, nil // já está no topo/fim
	}

	return &SwapPair{A: &ordered[idx], B: &ordered[neighbor]}, nil
}
