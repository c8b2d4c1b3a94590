package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/justificativas/dto"
	"esquadrao_backend/internals/features/justificativas/model"
	helper "esquadrao_backend/internals/helpers"
)

type JustificativaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewJustificativaController(db *gorm.DB) *JustificativaController {
	return &JustificativaController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/justificativas?militar_id=
func (ctrl *JustificativaController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.JustificativaModel{})

	if mid := c.Query("militar_id"); mid != "" {
		id, err := uuid.Parse(mid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "militar_id inválido")
		}
		q = q.Where("justificativa_militar_id = ?", id)
	}

	var justificativas []model.JustificativaModel
	if err := q.Order("justificativa_data_inicio DESC").Find(&justificativas).Error; err != nil {
		log.Printf("[ERROR] List justificativas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar justificativas")
	}

	return helper.JsonOK(c, "", dto.ToJustificativaResponseList(justificativas))
}

// 🟢 POST /api/justificativas
func (ctrl *JustificativaController) Create(c *fiber.Ctx) error {
	var req dto.JustificativaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	justificativa, err := req.ToModel()
	if err != nil {
		if errors.Is(err, dto.ErrInvalidWindow) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Datas inválidas (use YYYY-MM-DD)")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(justificativa).Error; err != nil {
		log.Printf("[ERROR] Create justificativa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar justificativa")
	}

	return helper.JsonCreated(c, "Justificativa criada", dto.ToJustificativaResponse(justificativa))
}

// 🟢 PUT /api/justificativas/:id
func (ctrl *JustificativaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.JustificativaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	updated, err := req.ToModel()
	if err != nil {
		if errors.Is(err, dto.ErrInvalidWindow) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Datas inválidas (use YYYY-MM-DD)")
	}

	var existing model.JustificativaModel
	if err := ctrl.DB.First(&existing, "justificativa_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Justificativa não encontrada")
		}
		log.Printf("[ERROR] Update justificativa find: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar justificativa")
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&existing).Updates(map[string]any{
		"justificativa_militar_id":   updated.JustificativaMilitarID,
		"justificativa_militar_nome": updated.JustificativaMilitarNome,
		"justificativa_motivo":       updated.JustificativaMotivo,
		"justificativa_data_inicio":  updated.JustificativaDataInicio,
		"justificativa_data_fim":     updated.JustificativaDataFim,
	}).Error; err != nil {
		log.Printf("[ERROR] Update justificativa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar justificativa")
	}

	return helper.JsonUpdated(c, "Justificativa atualizada", dto.ToJustificativaResponse(&existing))
}

// 🟢 DELETE /api/justificativas/:id
func (ctrl *JustificativaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.JustificativaModel{}, "justificativa_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Delete justificativa: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover justificativa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Justificativa não encontrada")
	}

	return helper.JsonDeleted(c, "Justificativa removida", fiber.Map{"justificativa_id": id})
}
