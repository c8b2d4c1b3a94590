package model

import (
	"time"

	"github.com/google/uuid"
)

// Anotações pessoais — cada usuário só enxerga as suas.
type NotaModel struct {
	NotaID       uuid.UUID `gorm:"column:nota_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"nota_id"`
	NotaUserID   uuid.UUID `gorm:"column:nota_user_id;type:uuid;not null;index" json:"nota_user_id"`
	NotaTitulo   string    `gorm:"column:nota_titulo;type:varchar(200);not null" json:"nota_titulo"`
	NotaConteudo string    `gorm:"column:nota_conteudo;type:text" json:"nota_conteudo"`

	NotaCreatedAt time.Time `gorm:"column:nota_created_at;autoCreateTime" json:"nota_created_at"`
	NotaUpdatedAt time.Time `gorm:"column:nota_updated_at;autoUpdateTime" json:"nota_updated_at"`
}

func (NotaModel) TableName() string {
	return "notas"
}
