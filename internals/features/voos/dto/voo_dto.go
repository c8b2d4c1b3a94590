package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"esquadrao_backend/internals/features/voos/model"
)

type VooRequest struct {
	Data      string      `json:"data" validate:"required,datetime=2006-01-02"`
	Hora      string      `json:"hora" validate:"required,datetime=15:04"`
	Descricao string      `json:"descricao"`
	Militares []uuid.UUID `json:"militares" validate:"required,min=1"`
}

type VooResponse struct {
	VooID     uuid.UUID   `json:"voo_id"`
	Data      string      `json:"data"`
	Hora      string      `json:"hora"`
	Descricao string      `json:"descricao"`
	Militares []uuid.UUID `json:"militares"`
}

// EncodeMilitares serializa a lista de ids para a coluna JSON.
func EncodeMilitares(ids []uuid.UUID) (datatypes.JSON, error) {
	raw, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// DecodeMilitares desserializa a coluna JSON para ids tipados.
// Coluna vazia vira lista vazia, não erro.
func DecodeMilitares(col datatypes.JSON) ([]uuid.UUID, error) {
	if len(col) == 0 {
		return []uuid.UUID{}, nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(col, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *VooRequest) ToModel() (*model.VooModel, error) {
	data, err := time.Parse("2006-01-02", r.Data)
	if err != nil {
		return nil, err
	}
	militares, err := EncodeMilitares(r.Militares)
	if err != nil {
		return nil, err
	}
	return &model.VooModel{
		VooData:      data,
		VooHora:      r.Hora,
		VooDescricao: r.Descricao,
		VooMilitares: militares,
	}, nil
}

func ToVooResponse(m *model.VooModel) (VooResponse, error) {
	ids, err := DecodeMilitares(m.VooMilitares)
	if err != nil {
		return VooResponse{}, err
	}
	return VooResponse{
		VooID:     m.VooID,
		Data:      m.VooData.Format("2006-01-02"),
		Hora:      m.VooHora,
		Descricao: m.VooDescricao,
		Militares: ids,
	}, nil
}

func ToVooResponseList(ms []model.VooModel) ([]VooResponse, error) {
	out := make([]VooResponse, 0, len(ms))
	for i := range ms {
		r, err := ToVooResponse(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
