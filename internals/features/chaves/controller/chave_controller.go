package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"esquadrao_backend/internals/features/chaves/model"
	helper "esquadrao_backend/internals/helpers"
)

type CautelaRequest struct {
	ChaveNome   string    `json:"chave_nome" validate:"required,min=1,max=120"`
	MilitarID   uuid.UUID `json:"militar_id" validate:"required"`
	MilitarNome string    `json:"militar_nome" validate:"required"`
}

type ChaveController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewChaveController(db *gorm.DB) *ChaveController {
	return &ChaveController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/chaves?abertas=true — cautelas em aberto ou todas
func (ctrl *ChaveController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.ChaveCautelaModel{})
	if c.Query("abertas") == "true" {
		q = q.Where("cautela_devolvida_em IS NULL")
	}

	var cautelas []model.ChaveCautelaModel
	if err := q.Order("cautela_retirada_em DESC").Find(&cautelas).Error; err != nil {
		log.Printf("[ERROR] List cautelas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar cautelas")
	}
	return helper.JsonOK(c, "", cautelas)
}

// 🟢 POST /api/chaves — registra retirada
func (ctrl *ChaveController) Checkout(c *fiber.Ctx) error {
	var req CautelaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	// mesma chave não pode ter duas cautelas em aberto
	var abertas int64
	if err := ctrl.DB.Model(&model.ChaveCautelaModel{}).
		Where("cautela_chave_nome = ? AND cautela_devolvida_em IS NULL", req.ChaveNome).
		Count(&abertas).Error; err != nil {
		log.Printf("[ERROR] Checkout count: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao verificar cautelas")
	}
	if abertas > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Chave já está cautelada")
	}

	cautela := model.ChaveCautelaModel{
		CautelaChaveNome:   req.ChaveNome,
		CautelaMilitarID:   req.MilitarID,
		CautelaMilitarNome: req.MilitarNome,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&cautela).Error; err != nil {
		log.Printf("[ERROR] Checkout create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao registrar cautela")
	}

	return helper.JsonCreated(c, "Cautela registrada", cautela)
}

// 🟢 POST /api/chaves/:id/devolver
func (ctrl *ChaveController) Return(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var cautela model.ChaveCautelaModel
	if err := ctrl.DB.First(&cautela, "cautela_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cautela não encontrada")
		}
		log.Printf("[ERROR] Return find: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar cautela")
	}
	if cautela.CautelaDevolvidaEm != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Chave já foi devolvida")
	}

	now := time.Now()
	if err := ctrl.DB.WithContext(c.Context()).Model(&cautela).
		Update("cautela_devolvida_em", now).Error; err != nil {
		log.Printf("[ERROR] Return update: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao registrar devolução")
	}
	cautela.CautelaDevolvidaEm = &now

	return helper.JsonUpdated(c, "Devolução registrada", cautela)
}
