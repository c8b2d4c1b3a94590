package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/notas/model"
	helper "esquadrao_backend/internals/helpers"
)

type NotaRequest struct {
	Titulo   string `json:"titulo" validate:"required,min=1,max=200"`
	Conteudo string `json:"conteudo"`
}

type NotaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotaController(db *gorm.DB) *NotaController {
	return &NotaController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/notas — só as do usuário logado
func (ctrl *NotaController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var notas []model.NotaModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("nota_user_id = ?", userID).
		Order("nota_updated_at DESC").
		Find(&notas).Error; err != nil {
		log.Printf("[ERROR] List notas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar anotações")
	}
	return helper.JsonOK(c, "", notas)
}

// 🟢 POST /api/notas
func (ctrl *NotaController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req NotaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	nota := model.NotaModel{
		NotaUserID:   userID,
		NotaTitulo:   req.Titulo,
		NotaConteudo: req.Conteudo,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&nota).Error; err != nil {
		log.Printf("[ERROR] Create nota: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar anotação")
	}
	return helper.JsonCreated(c, "Anotação criada", nota)
}

// 🟢 PUT /api/notas/:id
func (ctrl *NotaController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req NotaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	var nota model.NotaModel
	if err := ctrl.DB.First(&nota, "nota_id = ? AND nota_user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anotação não encontrada")
		}
		log.Printf("[ERROR] Update nota find: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar anotação")
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&nota).Updates(map[string]any{
		"nota_titulo":   req.Titulo,
		"nota_conteudo": req.Conteudo,
	}).Error; err != nil {
		log.Printf("[ERROR] Update nota: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar anotação")
	}
	return helper.JsonUpdated(c, "Anotação atualizada", nota)
}

// 🟢 DELETE /api/notas/:id
func (ctrl *NotaController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.NotaModel{}, "nota_id = ? AND nota_user_id = ?", id, userID)
	if res.Error != nil {
		log.Printf("[ERROR] Delete nota: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover anotação")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Anotação não encontrada")
	}
	return helper.JsonDeleted(c, "Anotação removida", fiber.Map{"nota_id": id})
}
