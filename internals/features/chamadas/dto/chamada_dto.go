package dto

import (
	"time"

	"github.com/google/uuid"

	"esquadrao_backend/internals/features/chamadas/model"
)

// Uma linha da chamada do dia.
type ChamadaItemRequest struct {
	MilitarID   uuid.UUID `json:"militar_id" validate:"required"`
	MilitarNome string    `json:"militar_nome" validate:"required"`
	Posto       string    `json:"posto" validate:"required"`
	Status      string    `json:"status" validate:"required"`
}

// ChamadaRequest registra uma chamada completa de uma vez.
type ChamadaRequest struct {
	Tipo  string               `json:"tipo" validate:"required"`
	Data  string               `json:"data" validate:"required,datetime=2006-01-02"`
	Itens []ChamadaItemRequest `json:"itens" validate:"required,min=1,dive"`
}

type ChamadaResponse struct {
	ChamadaID   uuid.UUID `json:"chamada_id"`
	MilitarID   uuid.UUID `json:"militar_id"`
	MilitarNome string    `json:"militar_nome"`
	Posto       string    `json:"posto"`
	Tipo        string    `json:"tipo"`
	Data        string    `json:"data"`
	Status      string    `json:"status"`
}

func (r *ChamadaRequest) ToModels() ([]model.ChamadaModel, error) {
	data, err := time.Parse("2006-01-02", r.Data)
	if err != nil {
		return nil, err
	}
	out := make([]model.ChamadaModel, 0, len(r.Itens))
	for _, item := range r.Itens {
		out = append(out, model.ChamadaModel{
			ChamadaMilitarID:   item.MilitarID,
			ChamadaMilitarNome: item.MilitarNome,
			ChamadaPosto:       item.Posto,
			ChamadaTipo:        r.Tipo,
			ChamadaData:        data,
			ChamadaStatus:      item.Status,
		})
	}
	return out, nil
}

func ToChamadaResponse(m *model.ChamadaModel) ChamadaResponse {
	return ChamadaResponse{
		ChamadaID:   m.ChamadaID,
		MilitarID:   m.ChamadaMilitarID,
		MilitarNome: m.ChamadaMilitarNome,
		Posto:       m.ChamadaPosto,
		Tipo:        m.ChamadaTipo,
		Data:        m.ChamadaData.Format("2006-01-02"),
		Status:      m.ChamadaStatus,
	}
}

func ToChamadaResponseList(ms []model.ChamadaModel) []ChamadaResponse {
	out := make([]ChamadaResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToChamadaResponse(&ms[i]))
	}
	return out
}
