package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/constants"
	"esquadrao_backend/internals/features/chamadas/dto"
	"esquadrao_backend/internals/features/chamadas/model"
	helper "esquadrao_backend/internals/helpers"
)

type ChamadaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewChamadaController(db *gorm.DB) *ChamadaController {
	return &ChamadaController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/chamadas?data=2024-01-10&tipo=matinal&page=&per_page=
func (ctrl *ChamadaController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.ChamadaModel{})

	if data := strings.TrimSpace(c.Query("data")); data != "" {
		if _, err := time.Parse("2006-01-02", data); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data inválida (use YYYY-MM-DD)")
		}
		q = q.Where("chamada_data = ?", data)
	}
	if tipo := strings.TrimSpace(c.Query("tipo")); tipo != "" {
		q = q.Where("chamada_tipo = ?", tipo)
	}

	paging := helper.ResolvePaging(c, 50, 500)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count chamadas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar chamadas")
	}

	var chamadas []model.ChamadaModel
	if err := q.
		Order("chamada_data DESC, chamada_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&chamadas).Error; err != nil {
		log.Printf("[ERROR] List chamadas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar chamadas")
	}

	return helper.JsonList(c, "", dto.ToChamadaResponseList(chamadas),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 POST /api/chamadas — grava a chamada inteira de uma vez.
// Registros históricos nunca são atualizados depois de criados.
func (ctrl *ChamadaController) Create(c *fiber.Ctx) error {
	var req dto.ChamadaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}
	for _, item := range req.Itens {
		if !constants.IsStatusChamada(item.Status) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				"Status de chamada desconhecido: "+item.Status)
		}
	}

	rows, err := req.ToModels()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data inválida (use YYYY-MM-DD)")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&rows).Error; err != nil {
		log.Printf("[ERROR] Create chamada: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao registrar chamada")
	}

	return helper.JsonCreated(c, "Chamada registrada", dto.ToChamadaResponseList(rows))
}
