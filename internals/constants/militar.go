package constants

// Postos e graduações aceitos no efetivo, do mais antigo ao mais moderno.
var Postos = []string{
	"CEL", "TEN CEL", "MAJ", "CAP", "1T", "2T", "ASP",
	"SO", "1S", "2S", "3S", "CB", "S1", "S2",
}

// Status de chamada
const (
	StatusPresente = "presente"
	StatusAusente  = "ausente"
	StatusAtrasado = "atrasado"
	StatusOutro    = "outro"
)

var StatusChamada = []string{
	StatusPresente,
	StatusAusente,
	StatusAtrasado,
	StatusOutro,
}

// Rótulo exibido quando a ausência está coberta por justificativa.
// É literal do documento oficial — não traduzir nem normalizar.
const StatusJustificado = "JUSTIFICADO"

func IsPosto(p string) bool {
	for _, v := range Postos {
		if v == p {
			return true
		}
	}
	return false
}

func IsStatusChamada(s string) bool {
	for _, v := range StatusChamada {
		if v == s {
			return true
		}
	}
	return false
}
