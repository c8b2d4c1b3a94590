package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMilitarRequestToModelNomeEmCaixaAlta(t *testing.T) {
	req := MilitarRequest{MilitarPosto: " 2S ", MilitarNome: "  silva júnior "}

	m := req.ToModel()

	assert.Equal(t, "2S", m.MilitarPosto)
	assert.Equal(t, "SILVA JÚNIOR", m.MilitarNome)
	assert.Nil(t, m.MilitarAntiguidade, "antiguidade é atribuída pelo servidor, não pelo formulário")
}
