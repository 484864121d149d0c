package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aaaalfred/usuariosrecompensas/internal/apperror"
	"github.com/aaaalfred/usuariosrecompensas/internal/dto"
	"github.com/aaaalfred/usuariosrecompensas/internal/model"
	"github.com/aaaalfred/usuariosrecompensas/internal/repository"
	"github.com/aaaalfred/usuariosrecompensas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UsuariosHandler serves the whole usuarios section: search screen, search
// execution, and the create/edit forms.
type UsuariosHandler struct {
	svc       service.UsuarioService
	catalogos repository.CatalogoRepository
}

func NewUsuariosHandler(svc service.UsuarioService, catalogos repository.CatalogoRepository) *UsuariosHandler {
	return &UsuariosHandler{svc: svc, catalogos: catalogos}
}

// cargarCatalogos fetches both reference catalogs for the form screens.
func (h *UsuariosHandler) cargarCatalogos(c *gin.Context) ([]model.Perfil, []model.Sucursal, error) {
	perfiles, err := h.catalogos.ListarPerfiles(c.Request.Context())
	if err != nil {
		return nil, nil, err
	}
	sucursales, err := h.catalogos.ListarSucursales(c.Request.Context())
	if err != nil {
		return nil, nil, err
	}
	return perfiles, sucursales, nil
}

// Buscar renders the empty search screen. Only the sucursal catalog is
// needed here; a load failure degrades to an empty list with a message.
func (h *UsuariosHandler) Buscar(c *gin.Context) {
	data := gin.H{
		"sucursales":  []model.Sucursal{},
		"usuarios":    []model.Usuario{},
		"sucursal_id": "",
		"digitos":     "",
		"error":       nil,
		"mensaje":     nil,
	}

	sucursales, err := h.catalogos.ListarSucursales(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("error al cargar sucursales")
		data["error"] = "Error al cargar sucursales"
	} else {
		data["sucursales"] = sucursales
	}
	c.HTML(http.StatusOK, "usuarios_buscar.html", conSesion(c, data))
}

// EjecutarBusqueda runs the search by sucursal plus the last 2 digits of
// the clave. Precondition failures re-render with the submitted values
// echoed back and never touch the usuario store.
func (h *UsuariosHandler) EjecutarBusqueda(c *gin.Context) {
	var form dto.BusquedaForm
	_ = c.ShouldBind(&form)

	data := gin.H{
		"sucursales":  []model.Sucursal{},
		"usuarios":    []model.Usuario{},
		"sucursal_id": form.SucursalID,
		"digitos":     form.Digitos,
		"error":       nil,
		"mensaje":     nil,
	}

	sucursales, err := h.catalogos.ListarSucursales(c.Request.Context())
	if err != nil {
		// Degraded re-render: the search cannot proceed without the catalog.
		log.Error().Err(err).Msg("error al cargar sucursales")
		data["error"] = "Error al buscar usuario"
		c.HTML(http.StatusOK, "usuarios_buscar.html", conSesion(c, data))
		return
	}
	data["sucursales"] = sucursales

	usuarios, err := h.svc.Buscar(c.Request.Context(), form.SucursalID, form.Digitos)
	if err != nil {
		if ve := apperror.AsValidation(err); ve != nil {
			data["error"] = ve.Error()
		} else {
			log.Error().Err(err).Msg("error al buscar usuario")
			data["error"] = "Error al buscar usuario"
		}
		c.HTML(http.StatusOK, "usuarios_buscar.html", conSesion(c, data))
		return
	}

	if len(usuarios) == 0 {
		data["mensaje"] = "No se encontraron usuarios con esos criterios"
	} else {
		data["usuarios"] = usuarios
	}
	c.HTML(http.StatusOK, "usuarios_buscar.html", conSesion(c, data))
}

// NuevoForm renders a blank create form, optionally prefilling the clave
// from the query string.
func (h *UsuariosHandler) NuevoForm(c *gin.Context) {
	vista := usuarioVista(dto.UsuarioForm{Clave: c.Query("clave")})

	perfiles, sucursales, err := h.cargarCatalogos(c)
	if err != nil {
		log.Error().Err(err).Msg("error al cargar catalogos")
		h.renderForm(c, vista, nil, nil, false, "Error al cargar catalogos", "")
		return
	}
	h.renderForm(c, vista, perfiles, sucursales, false, "", "")
}

// Crear validates and inserts a new usuario, then redirects to its edit
// screen with a one-time success message.
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var form dto.UsuarioForm
	_ = c.ShouldBind(&form)
	vista := usuarioVista(form)

	perfiles, sucursales, err := h.cargarCatalogos(c)
	if err != nil {
		log.Error().Err(err).Msg("error al cargar catalogos")
		h.renderForm(c, vista, nil, nil, false, "Error al crear usuario", "")
		return
	}

	id, err := h.svc.Crear(c.Request.Context(), form)
	if err != nil {
		switch {
		case apperror.AsValidation(err) != nil:
			h.renderForm(c, vista, perfiles, sucursales, false, err.Error(), "")
		case errors.Is(err, apperror.ErrClaveDuplicada):
			h.renderForm(c, vista, perfiles, sucursales, false, "Ya existe un usuario con esa clave", "")
		default:
			log.Error().Err(err).Msg("error al crear usuario")
			h.renderForm(c, vista, perfiles, sucursales, false, "Error al crear usuario", "")
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/usuarios/editar/%d?mensaje=%s",
		id, url.PathEscape("Usuario creado exitosamente")))
}

// EditarForm renders the edit form for an existing usuario. An unknown id
// redirects back to the search screen.
func (h *UsuariosHandler) EditarForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	u, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		redirigirBusqueda(c, err)
		return
	}

	perfiles, sucursales, err := h.cargarCatalogos(c)
	if err != nil {
		log.Error().Err(err).Msg("error al cargar catalogos")
		c.Redirect(http.StatusFound, "/usuarios?error="+url.PathEscape("Error al cargar usuario"))
		return
	}

	h.renderForm(c, usuarioVistaModelo(u), perfiles, sucursales, true, "", c.Query("mensaje"))
}

// Actualizar applies the submitted changes to an existing usuario. The
// clave is never written, regardless of what was posted.
func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form dto.UsuarioForm
	_ = c.ShouldBind(&form)

	u, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		redirigirBusqueda(c, err)
		return
	}
	vista := usuarioVistaCombinada(u, form)

	perfiles, sucursales, err := h.cargarCatalogos(c)
	if err != nil {
		// Degraded re-render: empty catalogs, the error message stays visible.
		log.Error().Err(err).Msg("error al cargar catalogos")
		h.renderForm(c, vista, nil, nil, true, "Error al actualizar usuario", "")
		return
	}

	if err := h.svc.Actualizar(c.Request.Context(), id, form); err != nil {
		switch {
		case apperror.AsValidation(err) != nil:
			h.renderForm(c, vista, perfiles, sucursales, true, err.Error(), "")
		case errors.Is(err, apperror.ErrUsuarioNoEncontrado):
			redirigirBusqueda(c, err)
		default:
			log.Error().Err(err).Msg("error al actualizar usuario")
			// Re-render with the stored record when it can still be read,
			// falling back to the submitted fields.
			if recargado, rerr := h.svc.ObtenerPorID(c.Request.Context(), id); rerr == nil {
				vista = usuarioVistaModelo(recargado)
			}
			h.renderForm(c, vista, perfiles, sucursales, true, "Error al actualizar usuario", "")
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/usuarios/editar/%d?mensaje=%s",
		id, url.PathEscape("Usuario actualizado exitosamente")))
}

func (h *UsuariosHandler) renderForm(c *gin.Context, vista gin.H, perfiles []model.Perfil, sucursales []model.Sucursal, esEdicion bool, errMsg, mensaje string) {
	data := gin.H{
		"usuario":    vista,
		"perfiles":   perfiles,
		"sucursales": sucursales,
		"esEdicion":  esEdicion,
		"error":      nil,
		"mensaje":    nil,
	}
	if perfiles == nil {
		data["perfiles"] = []model.Perfil{}
	}
	if sucursales == nil {
		data["sucursales"] = []model.Sucursal{}
	}
	if errMsg != "" {
		data["error"] = errMsg
	}
	if mensaje != "" {
		data["mensaje"] = mensaje
	}
	c.HTML(http.StatusOK, "usuarios_form.html", conSesion(c, data))
}

// parseID reads the :id path parameter. A malformed id behaves like an
// unknown usuario: back to the search screen.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/usuarios?error="+url.PathEscape("Usuario no encontrado"))
		return 0, false
	}
	return uint(id), true
}

// redirigirBusqueda sends the admin back to the search screen after a load
// failure. The error query parameter is set but the search screen does not
// read it; kept for parity with the historical behavior.
func redirigirBusqueda(c *gin.Context, err error) {
	if errors.Is(err, apperror.ErrUsuarioNoEncontrado) {
		c.Redirect(http.StatusFound, "/usuarios?error="+url.PathEscape("Usuario no encontrado"))
		return
	}
	log.Error().Err(err).Msg("error al cargar usuario")
	c.Redirect(http.StatusFound, "/usuarios?error="+url.PathEscape("Error al cargar usuario"))
}
