package model

import (
	"time"

	"github.com/google/uuid"
)

// MilitarModel representa a tabela militares (efetivo do esquadrão).
// Antiguidade é a chave de ordenação total: menor = mais antigo.
type MilitarModel struct {
	MilitarID          uuid.UUID `gorm:"column:militar_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"militar_id"`
	MilitarPosto       string    `gorm:"column:militar_posto;type:varchar(20);not null" json:"militar_posto"`
	MilitarNome        string    `gorm:"column:militar_nome;type:varchar(120);not null" json:"militar_nome"`
	MilitarAntiguidade *int      `gorm:"column:militar_antiguidade" json:"militar_antiguidade"`

	MilitarCreatedAt time.Time `gorm:"column:militar_created_at;autoCreateTime" json:"militar_created_at"`
	MilitarUpdatedAt time.Time `gorm:"column:militar_updated_at;autoUpdateTime" json:"militar_updated_at"`
}

func (MilitarModel) TableName() string {
	return "militares"
}
