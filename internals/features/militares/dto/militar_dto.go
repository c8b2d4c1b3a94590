package dto

import (
	"strings"

	"github.com/google/uuid"

	"esquadrao_backend/internals/features/militares/model"
)

type MilitarRequest struct {
	MilitarPosto string `json:"militar_posto" validate:"required"`
	MilitarNome  string `json:"militar_nome" validate:"required,min=2,max=120"`
}

// Update parcial (ponteiros distinguem "não enviado" de "vazio")
type MilitarUpdateRequest struct {
	MilitarPosto *string `json:"militar_posto"`
	MilitarNome  *string `json:"militar_nome"`
}

// ReorderRequest: subir/descer um militar na ordem de antiguidade.
// O campo filter carrega o texto de busca ativo no cliente — quando não
// vazio a troca é recusada, porque os índices da lista filtrada não
// correspondem à ordem total real.
type ReorderRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
	Filter    string `json:"filter"`
}

type MilitarResponse struct {
	MilitarID          uuid.UUID `json:"militar_id"`
	MilitarPosto       string    `json:"militar_posto"`
	MilitarNome        string    `json:"militar_nome"`
	MilitarAntiguidade *int      `json:"militar_antiguidade"`
	MilitarCreatedAt   string    `json:"militar_created_at"`
}

func (r *MilitarRequest) ToModel() *model.MilitarModel {
	return &model.MilitarModel{
		MilitarPosto: strings.TrimSpace(r.MilitarPosto),
		// nome sempre em caixa alta, como nos documentos oficiais
		MilitarNome: strings.ToUpper(strings.TrimSpace(r.MilitarNome)),
	}
}

func ToMilitarResponse(m *model.MilitarModel) MilitarResponse {
	return MilitarResponse{
		MilitarID:          m.MilitarID,
		MilitarPosto:       m.MilitarPosto,
		MilitarNome:        m.MilitarNome,
		MilitarAntiguidade: m.MilitarAntiguidade,
		MilitarCreatedAt:   m.MilitarCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToMilitarResponseList(ms []model.MilitarModel) []MilitarResponse {
	out := make([]MilitarResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToMilitarResponse(&ms[i]))
	}
	return out
}
