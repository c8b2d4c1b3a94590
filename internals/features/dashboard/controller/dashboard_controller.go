package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"esquadrao_backend/internals/constants"
	chamadaModel "esquadrao_backend/internals/features/chamadas/model"
	chaveModel "esquadrao_backend/internals/features/chaves/model"
	eventoModel "esquadrao_backend/internals/features/eventos/model"
	faxinaModel "esquadrao_backend/internals/features/faxina/model"
	justificativaModel "esquadrao_backend/internals/features/justificativas/model"
	militarModel "esquadrao_backend/internals/features/militares/model"
	notaModel "esquadrao_backend/internals/features/notas/model"
	permanenciaModel "esquadrao_backend/internals/features/permanencia/model"
	relatorioService "esquadrao_backend/internals/features/relatorios/service"
	ticketModel "esquadrao_backend/internals/features/tickets/model"
	vooModel "esquadrao_backend/internals/features/voos/model"
	helper "esquadrao_backend/internals/helpers"
)

// DashboardController expõe os contadores do painel inicial.
// Cada endpoint consulta o banco na hora — nada fica em cache.
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func hoje() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 🟢 GET /api/dashboard/chamada
//
// Contador "ao vivo" do dia: militar sem registro de chamada ainda
// NÃO foi chamado, então não entra nem em presentes nem em ausentes.
// O relatório consolidado conta diferente (sem registro = ausente);
// os dois contadores coexistem de propósito.
func (ctrl *DashboardController) Chamada(c *fiber.Ctx) error {
	dia := hoje()

	var efetivo []militarModel.MilitarModel
	if err := ctrl.DB.WithContext(c.Context()).Find(&efetivo).Error; err != nil {
		log.Printf("[ERROR] Dashboard chamada (efetivo): %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar efetivo")
	}

	var registros []chamadaModel.ChamadaModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("chamada_data = ?", dia).
		Find(&registros).Error; err != nil {
		log.Printf("[ERROR] Dashboard chamada (registros): %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar chamadas")
	}

	var justificativas []justificativaModel.JustificativaModel
	if err := ctrl.DB.WithContext(c.Context()).Find(&justificativas).Error; err != nil {
		log.Printf("[ERROR] Dashboard chamada (justificativas): %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar justificativas")
	}

	porMilitar := make(map[string]string, len(registros))
	for _, r := range registros {
		porMilitar[r.ChamadaMilitarID.String()] = r.ChamadaStatus
	}
	justificado := make(map[string]bool, len(justificativas))
	for i := range justificativas {
		if justificativas[i].Covers(dia) {
			justificado[justificativas[i].JustificativaMilitarID.String()] = true
		}
	}

	total := len(efetivo)
	presentes, ausentes, justificados := 0, 0, 0
	for _, m := range efetivo {
		id := m.MilitarID.String()
		if justificado[id] {
			justificados++
		}
		status, chamado := porMilitar[id]
		if !chamado {
			continue // ainda não chamado hoje
		}
		switch {
		case status == constants.StatusPresente:
			presentes++
		case status == constants.StatusAusente && !justificado[id]:
			ausentes++
		}
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total":      total,
		"present":    presentes,
		"absent":     ausentes,
		"justified":  justificados,
		"percentage": relatorioService.Percentual(presentes, total),
	})
}

// 🟢 GET /api/dashboard/voos
func (ctrl *DashboardController) Voos(c *fiber.Ctx) error {
	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&vooModel.VooModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Dashboard voos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar voos")
	}
	return helper.JsonOK(c, "", fiber.Map{"total": total})
}

// 🟢 GET /api/dashboard/eventos
func (ctrl *DashboardController) Eventos(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.Context()).Model(&eventoModel.EventoModel{})

	var total, proximos int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Dashboard eventos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar eventos")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&eventoModel.EventoModel{}).
		Where("evento_data >= ?", hoje()).
		Count(&proximos).Error; err != nil {
		log.Printf("[ERROR] Dashboard eventos (próximos): %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar eventos")
	}
	return helper.JsonOK(c, "", fiber.Map{"total": total, "proximos": proximos})
}

// 🟢 GET /api/dashboard/justificativas
func (ctrl *DashboardController) Justificativas(c *fiber.Ctx) error {
	dia := hoje()

	var total, vigentes int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&justificativaModel.JustificativaModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Dashboard justificativas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar justificativas")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&justificativaModel.JustificativaModel{}).
		Where("justificativa_data_inicio <= ? AND justificativa_data_fim >= ?", dia, dia).
		Count(&vigentes).Error; err != nil {
		log.Printf("[ERROR] Dashboard justificativas (vigentes): %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar justificativas")
	}
	return helper.JsonOK(c, "", fiber.Map{"total": total, "vigentes": vigentes})
}

// 🟢 GET /api/dashboard/chaves
func (ctrl *DashboardController) Chaves(c *fiber.Ctx) error {
	var total, abertas int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&chaveModel.ChaveCautelaModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Dashboard chaves: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar cautelas")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&chaveModel.ChaveCautelaModel{}).
		Where("cautela_devolvida_em IS NULL").
		Count(&abertas).Error; err != nil {
		log.Printf("[ERROR] Dashboard chaves (abertas): %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar cautelas")
	}
	return helper.JsonOK(c, "", fiber.Map{"total": total, "abertas": abertas})
}

// 🟢 GET /api/dashboard/notas — só as notas do usuário logado
func (ctrl *DashboardController) Notas(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&notaModel.NotaModel{}).
		Where("nota_user_id = ?", userID).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] Dashboard notas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar notas")
	}
	return helper.JsonOK(c, "", fiber.Map{"total": total})
}

// 🟢 GET /api/dashboard/permanencia
func (ctrl *DashboardController) Permanencia(c *fiber.Ctx) error {
	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&permanenciaModel.PermanenciaModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Dashboard permanencia: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar escala de permanência")
	}
	return helper.JsonOK(c, "", fiber.Map{"total": total})
}

// 🟢 GET /api/dashboard/faxina
func (ctrl *DashboardController) Faxina(c *fiber.Ctx) error {
	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&faxinaModel.FaxinaModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Dashboard faxina: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar escala de faxina")
	}
	return helper.JsonOK(c, "", fiber.Map{"total": total})
}

// 🟢 GET /api/dashboard/tickets
func (ctrl *DashboardController) Tickets(c *fiber.Ctx) error {
	contarPorStatus := func(status string) (int64, error) {
		var n int64
		err := ctrl.DB.WithContext(c.Context()).
			Model(&ticketModel.TicketModel{}).
			Where("ticket_status = ?", status).
			Count(&n).Error
		return n, err
	}

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&ticketModel.TicketModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Dashboard tickets: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar chamados")
	}
	abertos, err := contarPorStatus(ticketModel.TicketAberto)
	if err != nil {
		log.Printf("[ERROR] Dashboard tickets (abertos): %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar chamados")
	}
	emAtendimento, err := contarPorStatus(ticketModel.TicketEmAtend)
	if err != nil {
		log.Printf("[ERROR] Dashboard tickets (em atendimento): %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar chamados")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total":          total,
		"abertos":        abertos,
		"em_atendimento": emAtendimento,
	})
}
