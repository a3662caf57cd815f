package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin       = "admin"
	RoleRegistrador = "registrador"
	RoleAuditor     = "auditor"
)

// Permisos por función (pestañas de la aplicación original).
const (
	PermRegister    = "tab1" // registrar a ciegas
	PermAudit       = "tab2" // auditar
	PermReport      = "tab3" // reportes de divergencia
	PermManageUsers = "tab4" // gestión de usuarios
)

// AllPermissions devuelve el conjunto completo de permisos, en orden estable.
func AllPermissions() []string {
	return []string{PermRegister, PermAudit, PermReport, PermManageUsers}
}

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleRegistrador, RoleAuditor:
		return true
	}
	return false
}

// User representa una cuenta del sistema. El rol y el conjunto de permisos
// son independientes: ambos deben autorizar una función para poder usarla.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	Permissions  []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPermission indica si el usuario tiene el permiso (tab) dado.
func (u *User) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
