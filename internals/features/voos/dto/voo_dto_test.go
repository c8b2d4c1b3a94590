package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestEncodeDecodeMilitares(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	col, err := EncodeMilitares(ids)
	require.NoError(t, err)
	assert.JSONEq(t,
		`["`+ids[0].String()+`","`+ids[1].String()+`","`+ids[2].String()+`"]`,
		string(col),
		"o formato de armazenamento é um array JSON de ids")

	back, err := DecodeMilitares(col)
	require.NoError(t, err)
	assert.Equal(t, ids, back)
}

func TestDecodeMilitaresColunaVazia(t *testing.T) {
	back, err := DecodeMilitares(nil)
	require.NoError(t, err)
	assert.Empty(t, back)
	assert.NotNil(t, back, "coluna vazia vira lista vazia, não nil")
}

func TestDecodeMilitaresJSONInvalido(t *testing.T) {
	_, err := DecodeMilitares(datatypes.JSON(`{"nao":"lista"}`))
	assert.Error(t, err)
}

func TestVooRequestToModel(t *testing.T) {
	id := uuid.New()
	req := VooRequest{
		Data:      "2024-06-15",
		Hora:      "08:30",
		Descricao: "Voo de instrução",
		Militares: []uuid.UUID{id},
	}

	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", m.VooData.Format("2006-01-02"))
	assert.Equal(t, "08:30", m.VooHora)

	resp, err := ToVooResponse(m)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, resp.Militares)
}

func TestVooRequestToModelDataInvalida(t *testing.T) {
	req := VooRequest{Data: "15/06/2024", Hora: "08:30"}
	_, err := req.ToModel()
	assert.Error(t, err)
}
