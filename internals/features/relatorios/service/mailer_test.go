package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeTransport struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeTransport) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestValidateRecipients(t *testing.T) {
	assert.NoError(t, ValidateRecipients([]string{"fiscal@fab.mil.br"}))
	assert.NoError(t, ValidateRecipients([]string{"a@b.co", "c@d.org"}))

	var de *DispatchError
	err := ValidateRecipients(nil)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "lista de destinatários vazia", de.Reason)

	err = ValidateRecipients([]string{"fiscal@fab.mil.br", "sem-arroba"})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "sem-arroba", de.Address)
}

// Um endereço malformado aborta o envio inteiro ANTES do transporte.
func TestSendAbortaAntesDoTransporte(t *testing.T) {
	ft := &fakeTransport{}
	m := &Mailer{
		From:       "permanencia@esquadrao",
		Dialer:     ft,
		Recipients: []string{"valido@fab.mil.br", "invalido"},
	}

	id, err := m.Send([]byte("%PDF"), "relatorio.pdf", "", "")

	var de *DispatchError
	require.ErrorAs(t, err, &de)
	assert.Empty(t, id)
	assert.Empty(t, ft.sent, "transporte não pode ser tocado com destinatário inválido")
}

func TestSendListaVazia(t *testing.T) {
	ft := &fakeTransport{}
	m := &Mailer{From: "permanencia@esquadrao", Dialer: ft, Recipients: nil}

	_, err := m.Send([]byte("%PDF"), "relatorio.pdf", "", "")

	var de *DispatchError
	require.ErrorAs(t, err, &de)
	assert.Empty(t, ft.sent)
}

func TestSendGeraMessageID(t *testing.T) {
	ft := &fakeTransport{}
	m := &Mailer{
		From:       "permanencia@esquadrao",
		Dialer:     ft,
		Recipients: []string{"fiscal@fab.mil.br"},
	}

	id, err := m.Send([]byte("%PDF"), "", "Assunto", "Corpo")

	require.NoError(t, err)
	assert.Regexp(t, `^<[0-9a-f-]+@esquadrao>$`, id)
	require.Len(t, ft.sent, 1)
	assert.Equal(t, []string{"fiscal@fab.mil.br"}, ft.sent[0].GetHeader("To"))
}

func TestSendErroDeTransporte(t *testing.T) {
	ft := &fakeTransport{err: errors.New("connection refused")}
	m := &Mailer{
		From:       "permanencia@esquadrao",
		Dialer:     ft,
		Recipients: []string{"fiscal@fab.mil.br"},
	}

	id, err := m.Send([]byte("%PDF"), "relatorio.pdf", "", "")

	require.Error(t, err)
	assert.Empty(t, id)

	var de *DispatchError
	assert.False(t, errors.As(err, &de), "erro de transporte não é erro de validação")
}
