package model

import (
	"time"

	"github.com/google/uuid"
)

// ChamadaModel representa a tabela chamadas (registros de presença).
// Nome e posto são desnormalizados de propósito: o registro histórico
// não muda quando o militar sai do efetivo ou é promovido.
type ChamadaModel struct {
	ChamadaID          uuid.UUID `gorm:"column:chamada_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"chamada_id"`
	ChamadaMilitarID   uuid.UUID `gorm:"column:chamada_militar_id;type:uuid;not null;index" json:"chamada_militar_id"`
	ChamadaMilitarNome string    `gorm:"column:chamada_militar_nome;type:varchar(120);not null" json:"chamada_militar_nome"`
	ChamadaPosto       string    `gorm:"column:chamada_posto;type:varchar(20);not null" json:"chamada_posto"`
	ChamadaTipo        string    `gorm:"column:chamada_tipo;type:varchar(60);not null;index" json:"chamada_tipo"`
	ChamadaData        time.Time `gorm:"column:chamada_data;type:date;not null;index" json:"chamada_data"`
	ChamadaStatus      string    `gorm:"column:chamada_status;type:varchar(20);not null" json:"chamada_status"`

	ChamadaCreatedAt time.Time `gorm:"column:chamada_created_at;autoCreateTime" json:"chamada_created_at"`
}

func (ChamadaModel) TableName() string {
	return "chamadas"
}
