package service

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"esquadrao_backend/internals/configs"
)

// DispatchError identifica o endereço que abortou o envio.
type DispatchError struct {
	Address string
	Reason  string
}

func (e *DispatchError) Error() string {
	if e.Address != "" {
		return fmt.Sprintf("despacho abortado: endereço inválido %q (%s)", e.Address, e.Reason)
	}
	return fmt.Sprintf("despacho abortado: %s", e.Reason)
}

// checagem básica de formato — não é RFC completa de propósito,
// só barra o que certamente não é um email.
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateRecipients: tudo-ou-nada. Qualquer endereço malformado aborta
// o envio inteiro ANTES de falar com o transporte — sem entrega parcial.
func ValidateRecipients(to []string) error {
	if len(to) == 0 {
		return &DispatchError{Reason: "lista de destinatários vazia"}
	}
	for _, addr := range to {
		if !emailShape.MatchString(addr) {
			return &DispatchError{Address: addr, Reason: "formato inválido"}
		}
	}
	return nil
}

// Transport abstrai o gomail.Dialer para os testes.
type Transport interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer envia o relatório em PDF como anexo para a lista FIXA de
// destinatários configurada — o `to` do request é ignorado de propósito,
// para garantir que o documento sempre chegue à fiscalização.
type Mailer struct {
	From       string
	Dialer     Transport
	Recipients []string
}

func NewMailer() *Mailer {
	return &Mailer{
		From: configs.MailFrom,
		Dialer: gomail.NewDialer(
			configs.SMTPHost,
			configs.SMTPPort,
			configs.SMTPUser,
			configs.SMTPPassword,
		),
		Recipients: configs.ReportRecipients,
	}
}

// Send valida os destinatários, monta a mensagem com o anexo e despacha.
// Retorna o Message-ID gerado.
func (m *Mailer) Send(pdf []byte, pdfName, subject, body string) (string, error) {
	if err := ValidateRecipients(m.Recipients); err != nil {
		return "", err
	}
	if subject == "" {
		subject = TituloRelatorio
	}
	if pdfName == "" {
		pdfName = "relatorio_chamada.pdf"
	}

	messageID := fmt.Sprintf("<%s@esquadrao>", uuid.NewString())

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.Recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", messageID)
	msg.SetBody("text/plain", body)
	msg.Attach(pdfName,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(pdf))
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	if err := m.Dialer.DialAndSend(msg); err != nil {
		return "", fmt.Errorf("falha no transporte de email: %w", err)
	}
	return messageID, nil
}
