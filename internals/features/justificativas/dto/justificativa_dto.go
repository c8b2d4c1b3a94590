package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"esquadrao_backend/internals/features/justificativas/model"
)

var ErrInvalidWindow = errors.New("data_inicio deve ser menor ou igual a data_fim")

type JustificativaRequest struct {
	MilitarID   uuid.UUID `json:"militar_id" validate:"required"`
	MilitarNome string    `json:"militar_nome" validate:"required"`
	Motivo      string    `json:"motivo"`
	DataInicio  string    `json:"data_inicio" validate:"required,datetime=2006-01-02"`
	DataFim     string    `json:"data_fim" validate:"required,datetime=2006-01-02"`
}

type JustificativaResponse struct {
	JustificativaID uuid.UUID `json:"justificativa_id"`
	MilitarID       uuid.UUID `json:"militar_id"`
	MilitarNome     string    `json:"militar_nome"`
	Motivo          string    `json:"motivo"`
	DataInicio      string    `json:"data_inicio"`
	DataFim         string    `json:"data_fim"`
	CreatedAt       string    `json:"created_at"`
}

// ToModel valida a janela aqui (camada de formulário), não no banco —
// comportamento herdado do sistema original.
func (r *JustificativaRequest) ToModel() (*model.JustificativaModel, error) {
	inicio, err := time.Parse("2006-01-02", r.DataInicio)
	if err != nil {
		return nil, err
	}
	fim, err := time.Parse("2006-01-02", r.DataFim)
	if err != nil {
		return nil, err
	}
	if inicio.After(fim) {
		return nil, ErrInvalidWindow
	}
	return &model.JustificativaModel{
		JustificativaMilitarID:   r.MilitarID,
		JustificativaMilitarNome: r.MilitarNome,
		JustificativaMotivo:      r.Motivo,
		JustificativaDataInicio:  inicio,
		JustificativaDataFim:     fim,
	}, nil
}

func ToJustificativaResponse(m *model.JustificativaModel) JustificativaResponse {
	return JustificativaResponse{
		JustificativaID: m.JustificativaID,
		MilitarID:       m.JustificativaMilitarID,
		MilitarNome:     m.JustificativaMilitarNome,
		Motivo:          m.JustificativaMotivo,
		DataInicio:      m.JustificativaDataInicio.Format("2006-01-02"),
		DataFim:         m.JustificativaDataFim.Format("2006-01-02"),
		CreatedAt:       m.JustificativaCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToJustificativaResponseList(ms []model.JustificativaModel) []JustificativaResponse {
	out := make([]JustificativaResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToJustificativaResponse(&ms[i]))
	}
	return out
}
