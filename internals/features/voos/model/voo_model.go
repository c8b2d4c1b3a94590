package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VooModel representa a tabela voos.
// VooMilitares guarda um array JSON de ids (contrato herdado do sistema
// antigo): decodificar antes de usar, codificar antes de gravar.
type VooModel struct {
	VooID        uuid.UUID      `gorm:"column:voo_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"voo_id"`
	VooData      time.Time      `gorm:"column:voo_data;type:date;not null;index" json:"voo_data"`
	VooHora      string         `gorm:"column:voo_hora;type:varchar(5);not null" json:"voo_hora"`
	VooDescricao string         `gorm:"column:voo_descricao;type:text" json:"voo_descricao"`
	VooMilitares datatypes.JSON `gorm:"column:voo_militares;type:jsonb" json:"voo_militares"`

	VooCreatedAt time.Time `gorm:"column:voo_created_at;autoCreateTime" json:"voo_created_at"`
}

func (VooModel) TableName() string {
	return "voos"
}
