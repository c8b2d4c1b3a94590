package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esquadrao_backend/internals/features/militares/model"
)

func militar(nome string, ant *int) model.MilitarModel {
	return model.MilitarModel{
		MilitarID:          uuid.New(),
		MilitarNome:        nome,
		MilitarAntiguidade: ant,
	}
}

func ptr(v int) *int { return &v }

func TestSortRoster(t *testing.T) {
	ms := []model.MilitarModel{
		militar("DELTA", nil),
		militar("CHARLIE", ptr(3)),
		militar("ALPHA", ptr(1)),
		militar("BRAVO", ptr(2)),
	}

	SortRoster(ms)

	nomes := []string{ms[0].MilitarNome, ms[1].MilitarNome, ms[2].MilitarNome, ms[3].MilitarNome}
	assert.Equal(t, []string{"ALPHA", "BRAVO", "CHARLIE", "DELTA"}, nomes,
		"antiguidade crescente, sem antiguidade por último")
}

func TestSortRosterDesempatePorNome(t *testing.T) {
	ms := []model.MilitarModel{
		militar("BRAVO", ptr(1)),
		militar("ALPHA", ptr(1)),
		militar("ZULU", nil),
		militar("MIKE", nil),
	}

	SortRoster(ms)

	assert.Equal(t, "ALPHA", ms[0].MilitarNome)
	assert.Equal(t, "BRAVO", ms[1].MilitarNome)
	assert.Equal(t, "MIKE", ms[2].MilitarNome)
	assert.Equal(t, "ZULU", ms[3].MilitarNome)
}

func TestNextAntiguidade(t *testing.T) {
	assert.Equal(t, 1, NextAntiguidade(nil), "efetivo vazio começa em 1")

	ms := []model.MilitarModel{
		militar("ALPHA", ptr(1)),
		militar("CHARLIE", ptr(7)),
		militar("DELTA", nil),
	}
	assert.Equal(t, 8, NextAntiguidade(ms))
}

func TestPlanReorderTrocaVizinhos(t *testing.T) {
	a := militar("ALPHA", ptr(1))
	b := militar("BRAVO", ptr(2))
	c := militar("CHARLIE", ptr(3))
	ordered := []model.MilitarModel{a, b, c}

	pair, err := PlanReorder(ordered, b.MilitarID, "up", "")

	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, b.MilitarID, pair.A.MilitarID)
	assert.Equal(t, a.MilitarID, pair.B.MilitarID)

	pair, err = PlanReorder(ordered, b.MilitarID, "down", "")
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, c.MilitarID, pair.B.MilitarID)
}

func TestPlanReorderNoOpNasPontas(t *testing.T) {
	a := militar("ALPHA", ptr(1))
	b := militar("BRAVO", ptr(2))
	ordered := []model.MilitarModel{a, b}

	pair, err := PlanReorder(ordered, a.MilitarID, "up", "")
	require.NoError(t, err)
	assert.Nil(t, pair, "primeiro da lista subindo é no-op")

	pair, err = PlanReorder(ordered, b.MilitarID, "down", "")
	require.NoError(t, err)
	assert.Nil(t, pair, "último da lista descendo é no-op")
}

func TestPlanReorderBloqueadoComFiltro(t *testing.T) {
	a := militar("ALPHA", ptr(1))
	ordered := []model.MilitarModel{a}

	_, err := PlanReorder(ordered, a.MilitarID, "up", "alp")

	assert.ErrorIs(t, err, ErrFilterActive)
}

func TestPlanReorderErros(t *testing.T) {
	a := militar("ALPHA", ptr(1))
	ordered := []model.MilitarModel{a}

	_, err := PlanReorder(ordered, uuid.New(), "up", "")
	assert.ErrorIs(t, err, ErrMilitarNotInRoster)

	_, err = PlanReorder(ordered, a.MilitarID, "sideways", "")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}
