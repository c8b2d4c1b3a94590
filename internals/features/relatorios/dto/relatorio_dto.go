package dto

import "esquadrao_backend/internals/features/relatorios/service"

// Resposta do consolidado em JSON.
type ConsolidadoResponse struct {
	Data   string          `json:"data"`
	Tipo   string          `json:"tipo,omitempty"`
	Linhas []service.Linha `json:"linhas"`
	Resumo service.Resumo  `json:"resumo"`
}

// DispatchRequest é o contrato externo do despacho por email.
// `to` é aceito no payload mas IGNORADO — a lista de destinatários é
// fixa na configuração (comportamento herdado, não "corrigir").
type DispatchRequest struct {
	To        []string       `json:"to,omitempty"`
	Subject   string         `json:"subject,omitempty"`
	Text      string         `json:"text,omitempty"`
	PDFBuffer string         `json:"pdfBuffer" validate:"required"`
	PDFName   string         `json:"pdfName" validate:"required"`
	CallType  string         `json:"callType,omitempty"`
	Stats     *DispatchStats `json:"stats,omitempty"`
}

type DispatchStats struct {
	Total     int `json:"total"`
	Present   int `json:"present"`
	Absent    int `json:"absent"`
	Justified int `json:"justified"`
}

// DispatchResponse: shape cru do contrato — sem o envelope padrão.
type DispatchResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// EnviarRequest: fluxo principal — consolida, gera o PDF e despacha.
type EnviarRequest struct {
	Data    string `json:"data" validate:"required,datetime=2006-01-02"`
	Tipo    string `json:"tipo"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}
