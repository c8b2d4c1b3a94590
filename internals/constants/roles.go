package constants

import "fmt"

// Papéis de acesso
const (
	RoleUser  = "user"  // militar comum
	RoleAdmin = "admin" // administração do esquadrão
)

const (
	ErrOnlyAdminsCanAccess = "❌ Apenas administradores podem acessar %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

var (
	AllRoles  = []string{RoleUser, RoleAdmin}
	AdminOnly = []string{RoleAdmin}
)
