package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"esquadrao_backend/internals/constants"
)

func linhasDeExemplo() ([]Linha, Resumo) {
	linhas := []Linha{
		{Posto: "1S", Nome: "ALPHA", StatusBruto: constants.StatusPresente, Status: constants.StatusPresente},
		{Posto: "2S", Nome: "BRAVO", StatusBruto: constants.StatusAusente, Status: constants.StatusJustificado, Justificada: true, Observacao: "Dispensa médica"},
	}
	resumo := Resumo{Total: 2, Presentes: 1, Ausentes: 0, Justificados: 1, Percentual: 50}
	return linhas, resumo
}

func TestRenderPDF(t *testing.T) {
	linhas, resumo := linhasDeExemplo()

	out, err := RenderPDF(linhas, resumo, "Chamada Matinal", dia("2024-01-10"))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "saída deve ser um PDF")
}

func TestRenderPDFListaVazia(t *testing.T) {
	out, err := RenderPDF(nil, Resumo{}, "", dia("2024-01-10"))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "lista vazia ainda gera documento com cabeçalho")
}

func TestRenderExcel(t *testing.T) {
	linhas, resumo := linhasDeExemplo()

	out, err := RenderExcel(linhas, resumo, "Chamada Matinal", dia("2024-01-10"))
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Chamada")
	require.NoError(t, err)
	assert.NotEmpty(t, rows)
}
