package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"esquadrao_backend/internals/constants"
	"esquadrao_backend/internals/features/militares/dto"
	"esquadrao_backend/internals/features/militares/model"
	"esquadrao_backend/internals/features/militares/service"
	helper "esquadrao_backend/internals/helpers"
)

type MilitarController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMilitarController(db *gorm.DB) *MilitarController {
	return &MilitarController{DB: db, Validate: validator.New()}
}

// 🟢 GET /api/militares?q=
// Ordenado por antiguidade asc (nulos por último), desempate por nome.
func (ctrl *MilitarController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.MilitarModel{})

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToUpper(search) + "%"
		q = q.Where("UPPER(militar_nome) LIKE ? OR UPPER(militar_posto) LIKE ?", like, like)
	}

	var militares []model.MilitarModel
	if err := q.
		Order("militar_antiguidade ASC NULLS LAST").
		Order("militar_nome ASC").
		Find(&militares).Error; err != nil {
		log.Printf("[ERROR] List militares: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar o efetivo")
	}

	return helper.JsonOK(c, "", dto.ToMilitarResponseList(militares))
}

// 🟢 POST /api/militares
// Antiguidade = max(existente, 0) + 1; nome gravado em caixa alta.
func (ctrl *MilitarController) Create(c *fiber.Ctx) error {
	var req dto.MilitarRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}
	if !constants.IsPosto(strings.TrimSpace(req.MilitarPosto)) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Posto/graduação desconhecido")
	}

	militar := req.ToModel()

	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var existing []model.MilitarModel
		if er := tx.Select("militar_antiguidade").Find(&existing).Error; er != nil {
			return er
		}
		next := service.NextAntiguidade(existing)
		militar.MilitarAntiguidade = &next
		return tx.Create(militar).Error
	}); err != nil {
		log.Printf("[ERROR] Create militar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao cadastrar militar")
	}

	return helper.JsonCreated(c, "Militar cadastrado", dto.ToMilitarResponse(militar))
}

// 🟢 PATCH /api/militares/:id
func (ctrl *MilitarController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.MilitarUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	var militar model.MilitarModel
	if err := ctrl.DB.First(&militar, "militar_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Militar não encontrado")
		}
		log.Printf("[ERROR] Update militar find: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar militar")
	}

	updates := map[string]any{}
	if req.MilitarPosto != nil {
		p := strings.TrimSpace(*req.MilitarPosto)
		if !constants.IsPosto(p) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Posto/graduação desconhecido")
		}
		updates["militar_posto"] = p
	}
	if req.MilitarNome != nil {
		n := strings.ToUpper(strings.TrimSpace(*req.MilitarNome))
		if n == "" {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Nome não pode ser vazio")
		}
		updates["militar_nome"] = n
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nada para atualizar", dto.ToMilitarResponse(&militar))
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&militar).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Update militar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar militar")
	}

	return helper.JsonUpdated(c, "Militar atualizado", dto.ToMilitarResponse(&militar))
}

// 🟢 DELETE /api/militares/:id
// Remove só o registro do efetivo — o histórico de chamadas fica intacto.
func (ctrl *MilitarController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.MilitarModel{}, "militar_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] Delete militar: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover militar")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Militar não encontrado")
	}

	return helper.JsonDeleted(c, "Militar removido", fiber.Map{"militar_id": id})
}

// 🟢 POST /api/militares/:id/reorder
// Troca de antiguidade com o vizinho, numa transação única — evita a
// janela de inconsistência de duas escritas independentes.
func (ctrl *MilitarController) Reorder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	var ordered []model.MilitarModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.
			Order("militar_antiguidade ASC NULLS LAST").
			Order("militar_nome ASC").
			Find(&ordered).Error; er != nil {
			return er
		}

		pair, er := service.PlanReorder(ordered, id, req.Direction, req.Filter)
		if er != nil {
			return er
		}
		if pair == nil {
			return nil // já está na ponta — no-op
		}

		a, b := pair.A, pair.B
		if er := tx.Model(&model.MilitarModel{}).
			Where("militar_id = ?", a.MilitarID).
			Update("militar_antiguidade", b.MilitarAntiguidade).Error; er != nil {
			return er
		}
		if er := tx.Model(&model.MilitarModel{}).
			Where("militar_id = ?", b.MilitarID).
			Update("militar_antiguidade", a.MilitarAntiguidade).Error; er != nil {
			return er
		}
		return nil
	})

	switch {
	case errors.Is(txErr, service.ErrFilterActive):
		return helper.JsonError(c, fiber.StatusConflict, txErr.Error())
	case errors.Is(txErr, service.ErrMilitarNotInRoster):
		return helper.JsonError(c, fiber.StatusNotFound, txErr.Error())
	case errors.Is(txErr, service.ErrInvalidDirection):
		return helper.JsonError(c, fiber.StatusBadRequest, txErr.Error())
	case txErr != nil:
		log.Printf("[ERROR] Reorder militar %s: %v", id, txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao reordenar efetivo")
	}

	// relê a ordem final para o cliente renderizar
	var after []model.MilitarModel
	if err := ctrl.DB.
		Order("militar_antiguidade ASC NULLS LAST").
		Order("militar_nome ASC").
		Find(&after).Error; err != nil {
		log.Printf("[ERROR] Reorder reload: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao recarregar efetivo")
	}

	return helper.JsonUpdated(c, "Ordem atualizada", dto.ToMilitarResponseList(after))
}
