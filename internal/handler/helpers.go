package handler

import (
	"strconv"

	"github.com/aaaalfred/usuariosrecompensas/internal/dto"
	"github.com/aaaalfred/usuariosrecompensas/internal/middleware"
	"github.com/aaaalfred/usuariosrecompensas/internal/model"

	"github.com/gin-gonic/gin"
)

// usuarioVista shapes submitted form values for the form template. Values
// are echoed back exactly as submitted, untrimmed.
func usuarioVista(form dto.UsuarioForm) gin.H {
	return gin.H{
		"clave":       form.Clave,
		"nombre":      form.Nombre,
		"alias":       form.Alias,
		"nip":         form.Nip,
		"perfil_id":   form.PerfilID,
		"sucursal_id": form.SucursalID,
	}
}

// usuarioVistaModelo shapes a stored usuario for the form template.
func usuarioVistaModelo(u *model.Usuario) gin.H {
	alias := ""
	if u.Alias != nil {
		alias = *u.Alias
	}
	return gin.H{
		"clave":       u.Clave,
		"nombre":      u.Nombre,
		"alias":       alias,
		"nip":         u.Nip,
		"perfil_id":   strconv.FormatUint(uint64(u.PerfilID), 10),
		"sucursal_id": strconv.FormatUint(uint64(u.SucursalID), 10),
	}
}

// usuarioVistaCombinada overlays the submitted fields on the stored record:
// submitted values win for every editable field, the clave always comes
// from the store.
func usuarioVistaCombinada(u *model.Usuario, form dto.UsuarioForm) gin.H {
	vista := usuarioVista(form)
	vista["clave"] = u.Clave
	return vista
}

// conSesion adds the authentication flag every template expects.
func conSesion(c *gin.Context, data gin.H) gin.H {
	data["isAuthenticated"] = middleware.IsAuthenticated(c)
	return data
}
