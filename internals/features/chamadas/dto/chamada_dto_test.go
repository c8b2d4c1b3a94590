package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esquadrao_backend/internals/constants"
)

func TestChamadaRequestToModels(t *testing.T) {
	req := ChamadaRequest{
		Tipo: "Chamada Matinal",
		Data: "2024-01-10",
		Itens: []ChamadaItemRequest{
			{MilitarID: uuid.New(), MilitarNome: "ALPHA", Posto: "1S", Status: constants.StatusPresente},
			{MilitarID: uuid.New(), MilitarNome: "BRAVO", Posto: "2S", Status: constants.StatusAusente},
		},
	}

	ms, err := req.ToModels()
	require.NoError(t, err)
	require.Len(t, ms, 2)

	for _, m := range ms {
		assert.Equal(t, "Chamada Matinal", m.ChamadaTipo)
		assert.Equal(t, "2024-01-10", m.ChamadaData.Format("2006-01-02"))
	}
	assert.Equal(t, constants.StatusPresente, ms[0].ChamadaStatus)
	assert.Equal(t, constants.StatusAusente, ms[1].ChamadaStatus)
}

func TestChamadaRequestDataInvalida(t *testing.T) {
	req := ChamadaRequest{
		Tipo:  "Chamada Matinal",
		Data:  "10/01/2024",
		Itens: []ChamadaItemRequest{{MilitarID: uuid.New(), MilitarNome: "A", Posto: "1S", Status: constants.StatusPresente}},
	}

	_, err := req.ToModels()
	assert.Error(t, err)
}
