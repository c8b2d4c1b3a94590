package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJustificativaRequestToModel(t *testing.T) {
	req := JustificativaRequest{
		MilitarID:   uuid.New(),
		MilitarNome: "SILVA",
		Motivo:      "Dispensa médica",
		DataInicio:  "2024-01-05",
		DataFim:     "2024-01-15",
	}

	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", m.JustificativaDataInicio.Format("2006-01-02"))
	assert.Equal(t, "2024-01-15", m.JustificativaDataFim.Format("2006-01-02"))
}

func TestJustificativaRequestJanelaInvertida(t *testing.T) {
	req := JustificativaRequest{
		MilitarID:   uuid.New(),
		MilitarNome: "SILVA",
		DataInicio:  "2024-01-15",
		DataFim:     "2024-01-05",
	}

	_, err := req.ToModel()
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestJustificativaJanelaDeUmDia(t *testing.T) {
	req := JustificativaRequest{
		MilitarID:   uuid.New(),
		MilitarNome: "SILVA",
		DataInicio:  "2024-01-10",
		DataFim:     "2024-01-10",
	}

	m, err := req.ToModel()
	require.NoError(t, err)
	assert.True(t, m.Covers(time.Date(2024, 1, 10, 13, 45, 0, 0, time.Local)),
		"janela de um dia cobre o próprio dia, independente da hora")
	assert.False(t, m.Covers(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)))
}
