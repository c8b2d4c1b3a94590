package model

import (
	"time"

	"github.com/google/uuid"
)

// Escala de permanência: um militar de serviço por dia.
type PermanenciaModel struct {
	PermanenciaID          uuid.UUID `gorm:"column:permanencia_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"permanencia_id"`
	PermanenciaData        time.Time `gorm:"column:permanencia_data;type:date;not null;index" json:"permanencia_data"`
	PermanenciaMilitarID   uuid.UUID `gorm:"column:permanencia_militar_id;type:uuid;not null" json:"permanencia_militar_id"`
	PermanenciaMilitarNome string    `gorm:"column:permanencia_militar_nome;type:varchar(120);not null" json:"permanencia_militar_nome"`
	PermanenciaObservacao  string    `gorm:"column:permanencia_observacao;type:text" json:"permanencia_observacao"`

	PermanenciaCreatedAt time.Time `gorm:"column:permanencia_created_at;autoCreateTime" json:"permanencia_created_at"`
}

func (PermanenciaModel) TableName() string {
	return "permanencias"
}
