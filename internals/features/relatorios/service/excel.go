package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// RenderExcel exporta o mesmo consolidado em planilha (uma aba de linhas,
// resumo ao final).
func RenderExcel(linhas []Linha, resumo Resumo, tipoLabel string, data time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Chamada"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar aba: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	_ = f.SetCellValue(sheet, "A1", TituloRelatorio)
	_ = f.SetCellValue(sheet, "A2", fmt.Sprintf("Data: %s", data.Format("02/01/2006")))
	if tipoLabel != "" {
		_ = f.SetCellValue(sheet, "A3", fmt.Sprintf("Chamada: %s", tipoLabel))
	}

	header := []string{"Posto", "Nome", "Situação", "Observação"}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 6
	for _, l := range linhas {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), l.Posto)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), l.Nome)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), l.Status)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), l.Observacao)
		row++
	}

	row += 1
	resumoPares := [][2]any{
		{"Efetivo total", resumo.Total},
		{"Presentes", resumo.Presentes},
		{"Ausentes (sem justificativa)", resumo.Ausentes},
		{"Justificados", resumo.Justificados},
		{"Percentual de presença", fmt.Sprintf("%d%%", resumo.Percentual)},
	}
	for _, par := range resumoPares {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), par[0])
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), par[1])
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("falha ao gerar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
