package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/faxina/model"
	helper "esquadrao_backend/internals/helpers"
)

type FaxinaRequest struct {
	Data        string    `json:"data" validate:"required,datetime=2006-01-02"`
	Setor       string    `json:"setor" validate:"required,min=1,max=120"`
	MilitarID   uuid.UUID `json:"militar_id" validate:"required"`
	MilitarNome string    `json:"militar_nome" validate:"required"`
}

type FaxinaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFaxinaController(db *gorm.DB) *FaxinaController {
	return &FaxinaController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/faxina?de=&ate=
func (ctrl *FaxinaController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.FaxinaModel{})
	if de := strings.TrimSpace(c.Query("de")); de != "" {
		q = q.Where("faxina_data >= ?", de)
	}
	if ate := strings.TrimSpace(c.Query("ate")); ate != "" {
		q = q.Where("faxina_data <= ?", ate)
	}

	var escalas []model.FaxinaModel
	if err := q.Order("faxina_data ASC, faxina_setor ASC").Find(&escalas).Error; err != nil {
		log.Printf("[ERROR] List faxina: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar a escala de faxina")
	}
	return helper.JsonOK(c, "", escalas)
}

// 🟢 POST /api/faxina
func (ctrl *FaxinaController) Create(c *fiber.Ctx) error {
	var req FaxinaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	data, _ := time.Parse("2006-01-02", req.Data)
	escala := model.FaxinaModel{
		FaxinaData:        data,
		FaxinaSetor:       req.Setor,
		FaxinaMilitarID:   req.MilitarID,
		FaxinaMilitarNome: req.MilitarNome,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&escala).Error; err != nil {
		log.Printf("[ERROR] Create faxina: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao escalar faxina")
	}
	return helper.JsonCreated(c, "Faxina escalada", escala)
}

// 🟢 DELETE /api/faxina/:id
func (ctrl *FaxinaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.FaxinaModel{}, "faxina_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Delete faxina: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover escala")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Escala não encontrada")
	}
	return helper.JsonDeleted(c, "Escala removida", fiber.Map{"faxina_id": id})
}
