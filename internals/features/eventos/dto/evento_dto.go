package dto

import (
	"time"

	"github.com/google/uuid"

	"esquadrao_backend/internals/features/eventos/model"
)

type EventoRequest struct {
	Titulo    string `json:"titulo" validate:"required,min=2,max=200"`
	Descricao string `json:"descricao"`
	Data      string `json:"data" validate:"required,datetime=2006-01-02"`
	Hora      string `json:"hora" validate:"omitempty,datetime=15:04"`
	Local     string `json:"local"`
}

type EventoResponse struct {
	EventoID  uuid.UUID `json:"evento_id"`
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao"`
	Data      string    `json:"data"`
	Hora      string    `json:"hora"`
	Local     string    `json:"local"`
}

func (r *EventoRequest) ToModel() (*model.EventoModel, error) {
	data, err := time.Parse("2006-01-02", r.Data)
	if err != nil {
		return nil, err
	}
	return &model.EventoModel{
		EventoTitulo:    r.Titulo,
		EventoDescricao: r.Descricao,
		EventoData:      data,
		EventoHora:      r.Hora,
		EventoLocal:     r.Local,
	}, nil
}

func ToEventoResponse(m *model.EventoModel) EventoResponse {
	return EventoResponse{
		EventoID:  m.EventoID,
		Titulo:    m.EventoTitulo,
		Descricao: m.EventoDescricao,
		Data:      m.EventoData.Format("2006-01-02"),
		Hora:      m.EventoHora,
		Local:     m.EventoLocal,
	}
}

func ToEventoResponseList(ms []model.EventoModel) []EventoResponse {
	out := make([]EventoResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToEventoResponse(&ms[i]))
	}
	return out
}
