package model

import (
	"time"

	"github.com/google/uuid"
)

// Cautela de chaves: quem retirou qual chave e quando devolveu.
type ChaveCautelaModel struct {
	CautelaID          uuid.UUID  `gorm:"column:cautela_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"cautela_id"`
	CautelaChaveNome   string     `gorm:"column:cautela_chave_nome;type:varchar(120);not null" json:"cautela_chave_nome"`
	CautelaMilitarID   uuid.UUID  `gorm:"column:cautela_militar_id;type:uuid;not null;index" json:"cautela_militar_id"`
	CautelaMilitarNome string     `gorm:"column:cautela_militar_nome;type:varchar(120);not null" json:"cautela_militar_nome"`
	CautelaRetiradaEm  time.Time  `gorm:"column:cautela_retirada_em;autoCreateTime" json:"cautela_retirada_em"`
	CautelaDevolvidaEm *time.Time `gorm:"column:cautela_devolvida_em" json:"cautela_devolvida_em"`
}

func (ChaveCautelaModel) TableName() string {
	return "chaves_cautelas"
}
