package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esquadrao_backend/internals/constants"
	chamadaModel "esquadrao_backend/internals/features/chamadas/model"
	justificativaModel "esquadrao_backend/internals/features/justificativas/model"
	militarModel "esquadrao_backend/internals/features/militares/model"
)

func dia(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func militar(nome, posto string, ant int) militarModel.MilitarModel {
	return militarModel.MilitarModel{
		MilitarID:          uuid.New(),
		MilitarNome:        nome,
		MilitarPosto:       posto,
		MilitarAntiguidade: &ant,
	}
}

func TestPercentual(t *testing.T) {
	assert.Equal(t, 0, Percentual(0, 0), "efetivo vazio não pode dividir por zero")
	assert.Equal(t, 0, Percentual(5, 0))
	assert.Equal(t, 100, Percentual(3, 3))
	assert.Equal(t, 50, Percentual(1, 2))
	assert.Equal(t, 33, Percentual(1, 3))
	assert.Equal(t, 67, Percentual(2, 3))
}

func TestConsolidarCenarioCompleto(t *testing.T) {
	a := militar("ALPHA", "1S", 1)
	b := militar("BRAVO", "2S", 2)
	c := militar("CHARLIE", "3S", 3)
	data := dia("2024-01-10")

	chamadas := []chamadaModel.ChamadaModel{
		{
			ChamadaID:        uuid.New(),
			ChamadaMilitarID: a.MilitarID,
			ChamadaData:      data,
			ChamadaStatus:    constants.StatusPresente,
		},
	}
	justificativas := []justificativaModel.JustificativaModel{
		{
			JustificativaID:         uuid.New(),
			JustificativaMilitarID:  b.MilitarID,
			JustificativaMotivo:     "Dispensa médica",
			JustificativaDataInicio: dia("2024-01-05"),
			JustificativaDataFim:    dia("2024-01-15"),
		},
	}

	linhas, resumo := Consolidar(
		[]militarModel.MilitarModel{a, b, c}, chamadas, justificativas, data)

	require.Len(t, linhas, 3)
	assert.Equal(t, 3, resumo.Total)
	assert.Equal(t, 1, resumo.Presentes)
	assert.Equal(t, 1, resumo.Justificados)
	assert.Equal(t, 1, resumo.Ausentes, "sem registro e sem justificativa conta como ausente")
	assert.Equal(t, 33, resumo.Percentual)

	assert.Equal(t, constants.StatusPresente, linhas[0].Status)
	assert.Equal(t, constants.StatusJustificado, linhas[1].Status)
	assert.Equal(t, "Dispensa médica", linhas[1].Observacao)
	assert.Equal(t, constants.StatusAusente, linhas[2].StatusBruto)
	assert.False(t, linhas[2].Justificada)
}

// Presente COM justificativa vigente: o documento mostra JUSTIFICADO,
// mas a contagem de presentes é pelo status bruto. Comportamento
// herdado do sistema original — não "corrigir".
func TestConsolidarJustificativaSobrepoeExibicaoNaoContagem(t *testing.T) {
	a := militar("ALPHA", "1S", 1)
	data := dia("2024-03-01")

	chamadas := []chamadaModel.ChamadaModel{
		{
			ChamadaID:        uuid.New(),
			ChamadaMilitarID: a.MilitarID,
			ChamadaData:      data,
			ChamadaStatus:    constants.StatusPresente,
		},
	}
	justificativas := []justificativaModel.JustificativaModel{
		{
			JustificativaID:         uuid.New(),
			JustificativaMilitarID:  a.MilitarID,
			JustificativaDataInicio: data,
			JustificativaDataFim:    data,
		},
	}

	linhas, resumo := Consolidar(
		[]militarModel.MilitarModel{a}, chamadas, justificativas, data)

	require.Len(t, linhas, 1)
	assert.Equal(t, constants.StatusJustificado, linhas[0].Status)
	assert.Equal(t, constants.StatusPresente, linhas[0].StatusBruto)
	assert.Equal(t, 1, resumo.Presentes)
	assert.Equal(t, 1, resumo.Justificados)
	assert.Equal(t, 0, resumo.Ausentes)
}

func TestConsolidarMotivoVazioViraLiteralJustificado(t *testing.T) {
	a := militar("ALPHA", "CB", 1)
	data := dia("2024-03-01")

	justificativas := []justificativaModel.JustificativaModel{
		{
			JustificativaID:         uuid.New(),
			JustificativaMilitarID:  a.MilitarID,
			JustificativaMotivo:     "",
			JustificativaDataInicio: data,
			JustificativaDataFim:    data,
		},
	}

	linhas, _ := Consolidar([]militarModel.MilitarModel{a}, nil, justificativas, data)

	require.Len(t, linhas, 1)
	assert.Equal(t, constants.StatusJustificado, linhas[0].Observacao)
}

func TestConsolidarJanelaInclusivaNasDuasPontas(t *testing.T) {
	a := militar("ALPHA", "S1", 1)
	jus := []justificativaModel.JustificativaModel{
		{
			JustificativaID:         uuid.New(),
			JustificativaMilitarID:  a.MilitarID,
			JustificativaDataInicio: dia("2024-01-05"),
			JustificativaDataFim:    dia("2024-01-15"),
		},
	}

	casos := []struct {
		data      string
		cobertura bool
	}{
		{"2024-01-04", false},
		{"2024-01-05", true},
		{"2024-01-10", true},
		{"2024-01-15", true},
		{"2024-01-16", false},
	}
	for _, tc := range casos {
		_, resumo := Consolidar([]militarModel.MilitarModel{a}, nil, jus, dia(tc.data))
		if tc.cobertura {
			assert.Equal(t, 1, resumo.Justificados, "data %s deveria estar coberta", tc.data)
		} else {
			assert.Equal(t, 0, resumo.Justificados, "data %s não deveria estar coberta", tc.data)
			assert.Equal(t, 1, resumo.Ausentes)
		}
	}
}

func TestConsolidarEfetivoVazio(t *testing.T) {
	linhas, resumo := Consolidar(nil, nil, nil, dia("2024-01-10"))

	assert.Empty(t, linhas)
	assert.Equal(t, Resumo{}, resumo)
}
