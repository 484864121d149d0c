package dto

// LoginForm is the POST /login body.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// BusquedaForm is the POST /usuarios/buscar body. Values stay as submitted
// so the screen can echo them back untouched on a validation error.
type BusquedaForm struct {
	SucursalID string `form:"sucursal_id"`
	Digitos    string `form:"digitos"`
}

// UsuarioForm carries the create/edit form fields. Everything is a string:
// presence and length rules run against the raw submitted values, and
// failed submissions are echoed back verbatim. Clave is only read by the
// create flow; the update flow never binds it.
type UsuarioForm struct {
	Nombre     string `form:"nombre"`
	Alias      string `form:"alias"`
	Nip        string `form:"nip"`
	PerfilID   string `form:"perfil_id"`
	SucursalID string `form:"sucursal_id"`
	Clave      string `form:"clave"`
}
