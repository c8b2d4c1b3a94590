package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/eventos/dto"
	"esquadrao_backend/internals/features/eventos/model"
	helper "esquadrao_backend/internals/helpers"
)

type EventoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventoController(db *gorm.DB) *EventoController {
	return &EventoController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/eventos?de=&ate=
func (ctrl *EventoController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.EventoModel{})
	if de := strings.TrimSpace(c.Query("de")); de != "" {
		q = q.Where("evento_data >= ?", de)
	}
	if ate := strings.TrimSpace(c.Query("ate")); ate != "" {
		q = q.Where("evento_data <= ?", ate)
	}

	var eventos []model.EventoModel
	if err := q.Order("evento_data ASC, evento_hora ASC").Find(&eventos).Error; err != nil {
		log.Printf("[ERROR] List eventos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar eventos")
	}

	return helper.JsonOK(c, "", dto.ToEventoResponseList(eventos))
}

// 🟢 POST /api/eventos
func (ctrl *EventoController) Create(c *fiber.Ctx) error {
	var req dto.EventoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	evento, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data inválida (use YYYY-MM-DD)")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(evento).Error; err != nil {
		log.Printf("[ERROR] Create evento: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar evento")
	}

	return helper.JsonCreated(c, "Evento criado", dto.ToEventoResponse(evento))
}

// 🟢 PUT /api/eventos/:id
func (ctrl *EventoController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.EventoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	updated, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data inválida (use YYYY-MM-DD)")
	}

	var evento model.EventoModel
	if err := ctrl.DB.First(&evento, "evento_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
		}
		log.Printf("[ERROR] Update evento find: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar evento")
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&evento).Updates(map[string]any{
		"evento_titulo":    updated.EventoTitulo,
		"evento_descricao": updated.EventoDescricao,
		"evento_data":      updated.EventoData,
		"evento_hora":      updated.EventoHora,
		"evento_local":     updated.EventoLocal,
	}).Error; err != nil {
		log.Printf("[ERROR] Update evento: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar evento")
	}

	return helper.JsonUpdated(c, "Evento atualizado", dto.ToEventoResponse(&evento))
}

// 🟢 DELETE /api/eventos/:id
func (ctrl *EventoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.EventoModel{}, "evento_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Delete evento: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover evento")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Evento não encontrado")
	}

	return helper.JsonDeleted(c, "Evento removido", fiber.Map{"evento_id": id})
}
