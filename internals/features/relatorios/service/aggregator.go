package service

import (
	"math"
	"time"

	chamadaModel "esquadrao_backend/internals/features/chamadas/model"
	justificativaModel "esquadrao_backend/internals/features/justificativas/model"
	militarModel "esquadrao_backend/internals/features/militares/model"

	"esquadrao_backend/internals/constants"
)

// Linha é uma linha do relatório de chamada consolidado.
type Linha struct {
	Posto       string `json:"posto"`
	Nome        string `json:"nome"`
	StatusBruto string `json:"status_bruto"`
	Status      string `json:"status"` // o que sai no documento
	Justificada bool   `json:"justificada"`
	Observacao  string `json:"observacao"`
}

// Resumo são os totais do dia.
type Resumo struct {
	Total        int `json:"total"`
	Presentes    int `json:"present"`
	Ausentes     int `json:"absent"`
	Justificados int `json:"justified"`
	Percentual   int `json:"percentage"`
}

// Percentual = round(presentes/total*100); 0 quando o efetivo está vazio.
func Percentual(presentes, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(presentes) / float64(total) * 100))
}

// Consolidar cruza efetivo × chamadas do dia × janelas de justificativa.
//
// Regras herdadas do sistema original (manter à risca):
//   - militar sem registro de chamada conta como ausente NO RELATÓRIO
//     (o painel ao vivo trata diferente — ver dashboard);
//   - justificativa vigente força o status exibido para "JUSTIFICADO",
//     mas NÃO mexe na contagem de presentes, que é pelo status bruto;
//   - observação recebe o motivo, ou o literal "JUSTIFICADO" se vazio.
func Consolidar(
	efetivo []militarModel.MilitarModel,
	chamadas []chamadaModel.ChamadaModel,
	justificativas []justificativaModel.JustificativaModel,
	data time.Time,
) ([]Linha, Resumo) {
	porMilitar := make(map[string]*chamadaModel.ChamadaModel, len(chamadas))
	for i := range chamadas {
		porMilitar[chamadas[i].ChamadaMilitarID.String()] = &chamadas[i]
	}

	linhas := make([]Linha, 0, len(efetivo))
	resumo := Resumo{Total: len(efetivo)}

	for i := range efetivo {
		m := &efetivo[i]

		statusBruto := constants.StatusAusente
		if reg, ok := porMilitar[m.MilitarID.String()]; ok {
			statusBruto = reg.ChamadaStatus
		}

		justificada := false
		motivo := ""
		for j := range justificativas {
			jus := &justificativas[j]
			if jus.JustificativaMilitarID == m.MilitarID && jus.Covers(data) {
				justificada = true
				motivo = jus.JustificativaMotivo
				break
			}
		}

		linha := Linha{
			Posto:       m.MilitarPosto,
			Nome:        m.MilitarNome,
			StatusBruto: statusBruto,
			Status:      statusBruto,
			Justificada: justificada,
		}
		if justificada {
			linha.Status = constants.StatusJustificado
			if motivo != "" {
				linha.Observacao = motivo
			} else {
				linha.Observacao = constants.StatusJustificado
			}
		}
		linhas = append(linhas, linha)

		if statusBruto == constants.StatusPresente {
			resumo.Presentes++
		}
		if statusBruto == constants.StatusAusente && !justificada {
			resumo.Ausentes++
		}
		if justificada {
			resumo.Justificados++
		}
	}

	resumo.Percentual = Percentual(resumo.Presentes, resumo.Total)
	return linhas, resumo
}
