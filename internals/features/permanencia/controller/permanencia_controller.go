package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/permanencia/model"
	helper "esquadrao_backend/internals/helpers"
)

type PermanenciaRequest struct {
	Data        string    `json:"data" validate:"required,datetime=2006-01-02"`
	MilitarID   uuid.UUID `json:"militar_id" validate:"required"`
	MilitarNome string    `json:"militar_nome" validate:"required"`
	Observacao  string    `json:"observacao"`
}

type PermanenciaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPermanenciaController(db *gorm.DB) *PermanenciaController {
	return &PermanenciaController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/permanencia?de=&ate=
func (ctrl *PermanenciaController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.PermanenciaModel{})
	if de := strings.TrimSpace(c.Query("de")); de != "" {
		q = q.Where("permanencia_data >= ?", de)
	}
	if ate := strings.TrimSpace(c.Query("ate")); ate != "" {
		q = q.Where("permanencia_data <= ?", ate)
	}

	var escalas []model.PermanenciaModel
	if err := q.Order("permanencia_data ASC").Find(&escalas).Error; err != nil {
		log.Printf("[ERROR] List permanencia: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar a escala")
	}
	return helper.JsonOK(c, "", escalas)
}

// 🟢 POST /api/permanencia
func (ctrl *PermanenciaController) Create(c *fiber.Ctx) error {
	var req PermanenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	data, _ := time.Parse("2006-01-02", req.Data)
	escala := model.PermanenciaModel{
		PermanenciaData:        data,
		PermanenciaMilitarID:   req.MilitarID,
		PermanenciaMilitarNome: req.MilitarNome,
		PermanenciaObservacao:  req.Observacao,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&escala).Error; err != nil {
		log.Printf("[ERROR] Create permanencia: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao escalar permanência")
	}
	return helper.JsonCreated(c, "Permanência escalada", escala)
}

// 🟢 DELETE /api/permanencia/:id
func (ctrl *PermanenciaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.PermanenciaModel{}, "permanencia_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Delete permanencia: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover escala")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Escala não encontrada")
	}
	return helper.JsonDeleted(c, "Escala removida", fiber.Map{"permanencia_id": id})
}
