package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Cabeçalho oficial — strings literais do documento da unidade.
// Não alterar grafia nem acentuação.
const (
	CabecalhoMinisterio = "MINISTÉRIO DA DEFESA"
	CabecalhoComando    = "COMANDO DA AERONÁUTICA"
	CabecalhoUnidade    = "ESQUADRÃO DE SEGURANÇA E DEFESA"
	CabecalhoLema       = "\"Vigilância e Proteção\""
	TituloRelatorio     = "RELATÓRIO DE CHAMADA DIÁRIA"
)

// RenderPDF monta o relatório paginado: cabeçalho, tabela (uma linha por
// militar) e bloco de resumo. Com lista vazia a tabela sai só com os
// títulos e o resumo zerado.
func RenderPDF(linhas []Linha, resumo Resumo, tipoLabel string, data time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // fontes core são cp1252
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ---- cabeçalho ----
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 6, tr(CabecalhoMinisterio), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(CabecalhoComando), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(CabecalhoUnidade), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 6, tr(CabecalhoLema), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, tr(TituloRelatorio), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Data: %s", data.Format("02/01/2006"))), "", 1, "C", false, 0, "")
	if tipoLabel != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Chamada: %s", tipoLabel)), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	// ---- tabela ----
	const (
		colMilitar = 70.0
		colStatus  = 40.0
		colObs     = 80.0
	)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(colMilitar, 8, tr("Militar"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colStatus, 8, tr("Situação"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(colObs, 8, tr("Observação"), "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, l := range linhas {
		pdf.CellFormat(colMilitar, 7, tr(fmt.Sprintf("%s %s", l.Posto, l.Nome)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colStatus, 7, tr(l.Status), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colObs, 7, tr(l.Observacao), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// ---- resumo ----
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, tr("RESUMO"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	resumoLinhas := []struct {
		label string
		valor string
	}{
		{"Efetivo total", fmt.Sprintf("%d", resumo.Total)},
		{"Presentes", fmt.Sprintf("%d", resumo.Presentes)},
		{"Ausentes (sem justificativa)", fmt.Sprintf("%d", resumo.Ausentes)},
		{"Justificados", fmt.Sprintf("%d", resumo.Justificados)},
		{"Percentual de presença", fmt.Sprintf("%d%%", resumo.Percentual)},
	}
	for _, r := range resumoLinhas {
		pdf.CellFormat(90, 7, tr(r.label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, r.valor, "1", 1, "C", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Gerado em %s", time.Now().Format("02/01/2006 15:04:05"))), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("falha ao gerar PDF: %w", err)
	}
	return buf.Bytes(), nil
}
