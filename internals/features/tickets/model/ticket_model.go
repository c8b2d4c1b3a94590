package model

import (
	"time"

	"github.com/google/uuid"
)

// Chamados de TI do esquadrão.
type TicketModel struct {
	TicketID            uuid.UUID `gorm:"column:ticket_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"ticket_id"`
	TicketTitulo        string    `gorm:"column:ticket_titulo;type:varchar(200);not null" json:"ticket_titulo"`
	TicketDescricao     string    `gorm:"column:ticket_descricao;type:text" json:"ticket_descricao"`
	TicketStatus        string    `gorm:"column:ticket_status;type:varchar(20);not null;default:'aberto'" json:"ticket_status"`
	TicketSolicitante   string    `gorm:"column:ticket_solicitante;type:varchar(120);not null" json:"ticket_solicitante"`
	TicketSolicitanteID uuid.UUID `gorm:"column:ticket_solicitante_id;type:uuid;not null;index" json:"ticket_solicitante_id"`

	TicketCreatedAt time.Time `gorm:"column:ticket_created_at;autoCreateTime" json:"ticket_created_at"`
	TicketUpdatedAt time.Time `gorm:"column:ticket_updated_at;autoUpdateTime" json:"ticket_updated_at"`
}

func (TicketModel) TableName() string {
	return "tickets_ti"
}

// Status possíveis de um chamado.
const (
	TicketAberto    = "aberto"
	TicketEmAtend   = "em_atendimento"
	TicketResolvido = "resolvido"
)
