package model

import (
	"time"

	"github.com/google/uuid"
)

// JustificativaModel: janela de datas (inclusiva nas duas pontas)
// durante a qual a ausência do militar é considerada justificada.
type JustificativaModel struct {
	JustificativaID          uuid.UUID `gorm:"column:justificativa_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"justificativa_id"`
	JustificativaMilitarID   uuid.UUID `gorm:"column:justificativa_militar_id;type:uuid;not null;index" json:"justificativa_militar_id"`
	JustificativaMilitarNome string    `gorm:"column:justificativa_militar_nome;type:varchar(120);not null" json:"justificativa_militar_nome"`
	JustificativaMotivo      string    `gorm:"column:justificativa_motivo;type:text" json:"justificativa_motivo"`
	JustificativaDataInicio  time.Time `gorm:"column:justificativa_data_inicio;type:date;not null" json:"justificativa_data_inicio"`
	JustificativaDataFim     time.Time `gorm:"column:justificativa_data_fim;type:date;not null" json:"justificativa_data_fim"`

	JustificativaCreatedAt time.Time `gorm:"column:justificativa_created_at;autoCreateTime" json:"justificativa_created_at"`
}

func (JustificativaModel) TableName() string {
	return "justificativas"
}

// Covers: data_inicio <= d <= data_fim (inclusivo nas duas pontas).
// Compara só a parte de data, ignorando hora/fuso.
func (j *JustificativaModel) Covers(d time.Time) bool {
	day := truncateDay(d)
	return !day.Before(truncateDay(j.JustificativaDataInicio)) &&
		!day.After(truncateDay(j.JustificativaDataFim))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
