package model

import (
	"time"

	"github.com/google/uuid"
)

type EventoModel struct {
	EventoID        uuid.UUID `gorm:"column:evento_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"evento_id"`
	EventoTitulo    string    `gorm:"column:evento_titulo;type:varchar(200);not null" json:"evento_titulo"`
	EventoDescricao string    `gorm:"column:evento_descricao;type:text" json:"evento_descricao"`
	EventoData      time.Time `gorm:"column:evento_data;type:date;not null;index" json:"evento_data"`
	EventoHora      string    `gorm:"column:evento_hora;type:varchar(5)" json:"evento_hora"`
	EventoLocal     string    `gorm:"column:evento_local;type:varchar(200)" json:"evento_local"`

	EventoCreatedAt time.Time `gorm:"column:evento_created_at;autoCreateTime" json:"evento_created_at"`
}

func (EventoModel) TableName() string {
	return "eventos"
}
