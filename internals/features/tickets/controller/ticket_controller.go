package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/tickets/model"
	helper "esquadrao_backend/internals/helpers"
)

type TicketRequest struct {
	Titulo    string `json:"titulo" validate:"required,min=2,max=200"`
	Descricao string `json:"descricao"`
}

type TicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=aberto em_atendimento resolvido"`
}

type TicketController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTicketController(db *gorm.DB) *TicketController {
	return &TicketController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/tickets?status=
func (ctrl *TicketController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.TicketModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("ticket_status = ?", status)
	}

	var tickets []model.TicketModel
	if err := q.Order("ticket_created_at DESC").Find(&tickets).Error; err != nil {
		log.Printf("[ERROR] List tickets: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar chamados")
	}
	return helper.JsonOK(c, "", tickets)
}

// 🟢 POST /api/tickets — solicitante vem do token
func (ctrl *TicketController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	userName, _ := c.Locals("user_name").(string)

	var req TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	ticket := model.TicketModel{
		TicketTitulo:        req.Titulo,
		TicketDescricao:     req.Descricao,
		TicketStatus:        model.TicketAberto,
		TicketSolicitante:   userName,
		TicketSolicitanteID: userID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&ticket).Error; err != nil {
		log.Printf("[ERROR] Create ticket: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao abrir chamado")
	}
	return helper.JsonCreated(c, "Chamado aberto", ticket)
}

// 🟢 PATCH /api/tickets/:id/status
func (ctrl *TicketController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req TicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	var ticket model.TicketModel
	if err := ctrl.DB.First(&ticket, "ticket_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Chamado não encontrado")
		}
		log.Printf("[ERROR] UpdateStatus find: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar chamado")
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&ticket).
		Update("ticket_status", req.Status).Error; err != nil {
		log.Printf("[ERROR] UpdateStatus: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar chamado")
	}
	return helper.JsonUpdated(c, "Chamado atualizado", ticket)
}

// 🟢 DELETE /api/tickets/:id
func (ctrl *TicketController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.TicketModel{}, "ticket_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Delete ticket: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover chamado")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Chamado não encontrado")
	}
	return helper.JsonDeleted(c, "Chamado removido", fiber.Map{"ticket_id": id})
}
