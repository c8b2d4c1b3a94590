package controller

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chamadaModel "esquadrao_backend/internals/features/chamadas/model"
	justificativaModel "esquadrao_backend/internals/features/justificativas/model"
	militarModel "esquadrao_backend/internals/features/militares/model"
	"esquadrao_backend/internals/features/relatorios/dto"
	"esquadrao_backend/internals/features/relatorios/service"
	helper "esquadrao_backend/internals/helpers"
)

type RelatorioController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Mailer   *service.Mailer
}

func NewRelatorioController(db *gorm.DB) *RelatorioController {
	return &RelatorioController{
		DB:       db,
		Validate: validator.New(),
		Mailer:   service.NewMailer(),
	}
}

// consolida efetivo × chamadas(data,tipo) × justificativas.
func (ctrl *RelatorioController) consolidar(c *fiber.Ctx, data time.Time, tipo string) ([]service.Linha, service.Resumo, error) {
	var efetivo []militarModel.MilitarModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("militar_antiguidade ASC NULLS LAST").
		Order("militar_nome ASC").
		Find(&efetivo).Error; err != nil {
		return nil, service.Resumo{}, fmt.Errorf("efetivo: %w", err)
	}

	q := ctrl.DB.WithContext(c.Context()).
		Where("chamada_data = ?", data.Format("2006-01-02"))
	if tipo != "" {
		q = q.Where("chamada_tipo = ?", tipo)
	}
	var chamadas []chamadaModel.ChamadaModel
	if err := q.Find(&chamadas).Error; err != nil {
		return nil, service.Resumo{}, fmt.Errorf("chamadas: %w", err)
	}

	var justificativas []justificativaModel.JustificativaModel
	if err := ctrl.DB.WithContext(c.Context()).Find(&justificativas).Error; err != nil {
		return nil, service.Resumo{}, fmt.Errorf("justificativas: %w", err)
	}

	linhas, resumo := service.Consolidar(efetivo, chamadas, justificativas, data)
	return linhas, resumo, nil
}

func parseData(c *fiber.Ctx) (time.Time, string, error) {
	raw := strings.TrimSpace(c.Query("data"))
	if raw == "" {
		raw = time.Now().Format("2006-01-02")
	}
	data, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, "", err
	}
	return data, strings.TrimSpace(c.Query("tipo")), nil
}

// 🟢 GET /api/relatorios/chamada?data=&tipo=
func (ctrl *RelatorioController) Consolidado(c *fiber.Ctx) error {
	data, tipo, err := parseData(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data inválida (use YYYY-MM-DD)")
	}

	linhas, resumo, err := ctrl.consolidar(c, data, tipo)
	if err != nil {
		log.Printf("[ERROR] Consolidado: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consolidar a chamada")
	}

	return helper.JsonOK(c, "", dto.ConsolidadoResponse{
		Data:   data.Format("2006-01-02"),
		Tipo:   tipo,
		Linhas: linhas,
		Resumo: resumo,
	})
}

// 🟢 GET /api/relatorios/chamada/pdf?data=&tipo=
func (ctrl *RelatorioController) PDF(c *fiber.Ctx) error {
	data, tipo, err := parseData(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data inválida (use YYYY-MM-DD)")
	}

	linhas, resumo, err := ctrl.consolidar(c, data, tipo)
	if err != nil {
		log.Printf("[ERROR] PDF consolidar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consolidar a chamada")
	}

	pdf, err := service.RenderPDF(linhas, resumo, tipo, data)
	if err != nil {
		log.Printf("[ERROR] RenderPDF: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar o PDF")
	}

	nome := fmt.Sprintf("relatorio_chamada_%s.pdf", data.Format("2006-01-02"))
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", nome))
	return c.Send(pdf)
}

// 🟢 GET /api/relatorios/chamada/excel?data=&tipo=
func (ctrl *RelatorioController) Excel(c *fiber.Ctx) error {
	data, tipo, err := parseData(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data inválida (use YYYY-MM-DD)")
	}

	linhas, resumo, err := ctrl.consolidar(c, data, tipo)
	if err != nil {
		log.Printf("[ERROR] Excel consolidar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consolidar a chamada")
	}

	xlsx, err := service.RenderExcel(linhas, resumo, tipo, data)
	if err != nil {
		log.Printf("[ERROR] RenderExcel: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar a planilha")
	}

	nome := fmt.Sprintf("relatorio_chamada_%s.xlsx", data.Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", nome))
	return c.Send(xlsx)
}

// 🟢 POST /api/relatorios/chamada/enviar — fluxo principal do botão
// "gerar relatório": consolida, gera o PDF e despacha por email.
func (ctrl *RelatorioController) Enviar(c *fiber.Ctx) error {
	var req dto.EnviarRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationErrorJSON(c, err)
	}

	data, _ := time.Parse("2006-01-02", req.Data)

	linhas, resumo, err := ctrl.consolidar(c, data, req.Tipo)
	if err != nil {
		log.Printf("[ERROR] Enviar consolidar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consolidar a chamada")
	}

	pdf, err := service.RenderPDF(linhas, resumo, req.Tipo, data)
	if err != nil {
		log.Printf("[ERROR] Enviar RenderPDF: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar o PDF")
	}

	nome := fmt.Sprintf("relatorio_chamada_%s.pdf", data.Format("2006-01-02"))
	messageID, err := ctrl.Mailer.Send(pdf, nome, req.Subject, req.Text)
	if err != nil {
		var de *service.DispatchError
		if errors.As(err, &de) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, de.Error())
		}
		log.Printf("[ERROR] Enviar dispatch: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	return helper.JsonOK(c, "Relatório enviado", fiber.Map{
		"message_id": messageID,
		"resumo":     resumo,
	})
}

// 🟢 POST /api/relatorios/dispatch — contrato externo cru:
// { to?, subject?, text?, pdfBuffer, pdfName, callType?, stats? }
// → { success, messageId?, error? }
// `to` é ignorado em favor da lista configurada.
func (ctrl *RelatorioController) Dispatch(c *fiber.Ctx) error {
	var req dto.DispatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.DispatchResponse{
			Success: false, Error: "payload inválido",
		})
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.DispatchResponse{
			Success: false, Error: "pdfBuffer e pdfName são obrigatórios",
		})
	}

	pdf, err := base64.StdEncoding.DecodeString(req.PDFBuffer)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.DispatchResponse{
			Success: false, Error: "pdfBuffer não é base64 válido",
		})
	}

	messageID, err := ctrl.Mailer.Send(pdf, req.PDFName, req.Subject, req.Text)
	if err != nil {
		var de *service.DispatchError
		status := fiber.StatusBadGateway
		if errors.As(err, &de) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(dto.DispatchResponse{
			Success: false, Error: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.DispatchResponse{
		Success:   true,
		MessageID: messageID,
	})
}
