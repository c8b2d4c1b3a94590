package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/voos/dto"
	"esquadrao_backend/internals/features/voos/model"
	helper "esquadrao_backend/internals/helpers"
)

type VooController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewVooController(db *gorm.DB) *VooController {
	return &VooController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/voos?data=
func (ctrl *VooController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.VooModel{})
	if data := strings.TrimSpace(c.Query("data")); data != "" {
		q = q.Where("voo_data = ?", data)
	}

	var voos []model.VooModel
	if err := q.Order("voo_data ASC, voo_hora ASC").Find(&voos).Error; err != nil {
		log.Printf("[ERROR] List voos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar voos")
	}

	resp, err := dto.ToVooResponseList(voos)
	if err != nil {
		log.Printf("[ERROR] Decode voo_militares: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registro de voo corrompido")
	}
	return helper.JsonOK(c, "", resp)
}

// 🟢 POST /api/voos
func (ctrl *VooController) Create(c *fiber.Ctx) error {
	var req dto.VooRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	voo, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data/hora inválidas")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(voo).Error; err != nil {
		log.Printf("[ERROR] Create voo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao agendar voo")
	}

	resp, _ := dto.ToVooResponse(voo)
	return helper.JsonCreated(c, "Voo agendado", resp)
}

// 🟢 PUT /api/voos/:id
func (ctrl *VooController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.VooRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	updated, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data/hora inválidas")
	}

	var voo model.VooModel
	if err := ctrl.DB.First(&voo, "voo_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Voo não encontrado")
		}
		log.Printf("[ERROR] Update voo find: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar voo")
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&voo).Updates(map[string]any{
		"voo_data":      updated.VooData,
		"voo_hora":      updated.VooHora,
		"voo_descricao": updated.VooDescricao,
		"voo_militares": updated.VooMilitares,
	}).Error; err != nil {
		log.Printf("[ERROR] Update voo: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar voo")
	}

	resp, _ := dto.ToVooResponse(&voo)
	return helper.JsonUpdated(c, "Voo atualizado", resp)
}

// 🟢 DELETE /api/voos/:id
func (ctrl *VooController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.VooModel{}, "voo_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Delete voo: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover voo")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Voo não encontrado")
	}

	return helper.JsonDeleted(c, "Voo removido", fiber.Map{"voo_id": id})
}
