package entity

import "time"

// Roles válidos para User. Cada rol habilita un conjunto de módulos
// (ver RequireRole en la capa HTTP).
const (
	RoleAdmin          = "ADMIN"
	RoleOperInventario = "OPER_INVENTARIO"
	RoleOperCompras    = "OPER_COMPRAS"
	RoleOperVentas     = "OPER_VENTAS"
	RoleOperProduccion = "OPER_PRODUCCION"
	RoleAnalistaFin    = "ANALISTA_FIN"
	RoleAuditor        = "AUDITOR"
)

// Estados válidos para User.
const (
	UserStatusActive    = "ACTIVO"
	UserStatusInactive  = "INACTIVO"
	UserStatusSuspended = "SUSPENDIDO"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Phone        string
	Role         string // ADMIN, OPER_INVENTARIO, OPER_COMPRAS, ...
	Status       string // ACTIVO, INACTIVO, SUSPENDIDO
	Area         string // área o unidad (opcional)
	Notes        string
	LastAccess   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole indica si el string corresponde a un rol conocido.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOperInventario, RoleOperCompras, RoleOperVentas,
		RoleOperProduccion, RoleAnalistaFin, RoleAuditor:
		return true
	}
	return false
}
