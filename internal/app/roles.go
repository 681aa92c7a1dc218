package app

// Authorization categories stored in the "categoria" table. Route guards
// compare them case-sensitively.
const (
	RoleAdministrador = "Administrador"
	RoleCoordinador   = "Coordinador"
	RoleDocente       = "Docente"
)

// AllRoles admits every known category.
var AllRoles = []string{RoleAdministrador, RoleCoordinador, RoleDocente}
