package model

import (
	"time"

	"github.com/google/uuid"
)

// Escala de faxina por setor.
type FaxinaModel struct {
	FaxinaID          uuid.UUID `gorm:"column:faxina_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"faxina_id"`
	FaxinaData        time.Time `gorm:"column:faxina_data;type:date;not null;index" json:"faxina_data"`
	FaxinaSetor       string    `gorm:"column:faxina_setor;type:varchar(120);not null" json:"faxina_setor"`
	FaxinaMilitarID   uuid.UUID `gorm:"column:faxina_militar_id;type:uuid;not null" json:"faxina_militar_id"`
	FaxinaMilitarNome string    `gorm:"column:faxina_militar_nome;type:varchar(120);not null" json:"faxina_militar_nome"`

	FaxinaCreatedAt time.Time `gorm:"column:faxina_created_at;autoCreateTime" json:"faxina_created_at"`
}

func (FaxinaModel) TableName() string {
	return "faxinas"
}
