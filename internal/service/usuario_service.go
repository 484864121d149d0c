package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aaaalfred/usuariosrecompensas/internal/apperror"
	"github.com/aaaalfred/usuariosrecompensas/internal/dto"
	"github.com/aaaalfred/usuariosrecompensas/internal/model"
	"github.com/aaaalfred/usuariosrecompensas/internal/repository"
)

// UsuarioService implements the search and create/update flows over usuario
// records. Validation messages are collected in declaration order and
// reported together, matching the screens' single combined error string.
type UsuarioService interface {
	Buscar(ctx context.Context, sucursalID, digitos string) ([]model.Usuario, error)
	Crear(ctx context.Context, form dto.UsuarioForm) (uint, error)
	Actualizar(ctx context.Context, id uint, form dto.UsuarioForm) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Usuario, error)
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

// Buscar filters usuarios by sucursal and the last 2 characters of the
// clave. Precondition failures never reach the store.
func (s *usuarioService) Buscar(ctx context.Context, sucursalID, digitos string) ([]model.Usuario, error) {
	if sucursalID == "" {
		return nil, &apperror.ValidationError{Errores: []string{"Debe seleccionar una sucursal"}}
	}
	digitos = strings.TrimSpace(digitos)
	if utf8.RuneCountInString(digitos) != 2 {
		return nil, &apperror.ValidationError{Errores: []string{"Debe ingresar exactamente 2 digitos"}}
	}

	sucID, err := strconv.ParseUint(sucursalID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("sucursal_id invalido: %w", err)
	}
	return s.repo.BuscarPorSucursal(ctx, uint(sucID), digitos)
}

// Crear validates the form, rejects a duplicate clave, and inserts the new
// usuario. Returns the generated id.
func (s *usuarioService) Crear(ctx context.Context, form dto.UsuarioForm) (uint, error) {
	if errores := validarUsuario(form, true); len(errores) > 0 {
		return 0, &apperror.ValidationError{Errores: errores}
	}

	perfilID, sucursalID, err := parseReferencias(form)
	if err != nil {
		return 0, err
	}

	u := &model.Usuario{
		Clave:      strings.TrimSpace(form.Clave),
		Nombre:     strings.TrimSpace(form.Nombre),
		Alias:      aliasONulo(form.Alias),
		Nip:        strings.TrimSpace(form.Nip),
		PerfilID:   perfilID,
		SucursalID: sucursalID,
	}
	if err := s.repo.CreateUnique(ctx, u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

// Actualizar loads the usuario, validates the submitted fields and writes
// the five mutable columns. Clave is not part of the accepted field set and
// is never touched.
func (s *usuarioService) Actualizar(ctx context.Context, id uint, form dto.UsuarioForm) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if errores := validarUsuario(form, false); len(errores) > 0 {
		return &apperror.ValidationError{Errores: errores}
	}

	perfilID, sucursalID, err := parseReferencias(form)
	if err != nil {
		return err
	}

	u.Nombre = strings.TrimSpace(form.Nombre)
	u.Alias = aliasONulo(form.Alias)
	u.Nip = strings.TrimSpace(form.Nip)
	u.PerfilID = perfilID
	u.SucursalID = sucursalID
	return s.repo.Update(ctx, u)
}

func (s *usuarioService) ObtenerPorID(ctx context.Context, id uint) (*model.Usuario, error) {
	return s.repo.FindByID(ctx, id)
}

// validarUsuario collects every violated rule. The nip length rule runs on
// the untrimmed value; clave is only required when creating.
func validarUsuario(form dto.UsuarioForm, esCreacion bool) []string {
	var errores []string
	if strings.TrimSpace(form.Nombre) == "" {
		errores = append(errores, "El nombre es requerido")
	}
	if strings.TrimSpace(form.Nip) == "" {
		errores = append(errores, "El NIP es requerido")
	}
	if form.Nip != "" && utf8.RuneCountInString(form.Nip) > 5 {
		errores = append(errores, "El NIP debe tener maximo 5 caracteres")
	}
	if form.PerfilID == "" {
		errores = append(errores, "Debe seleccionar un perfil")
	}
	if form.SucursalID == "" {
		errores = append(errores, "Debe seleccionar una sucursal")
	}
	if esCreacion && strings.TrimSpace(form.Clave) == "" {
		errores = append(errores, "La clave es requerida")
	}
	return errores
}

// parseReferencias converts the submitted perfil/sucursal ids. Presence was
// already validated; a non-numeric value is a malformed request and follows
// the generic store-failure path.
func parseReferencias(form dto.UsuarioForm) (uint, uint, error) {
	perfilID, err := strconv.ParseUint(form.PerfilID, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("perfil_id invalido: %w", err)
	}
	sucursalID, err := strconv.ParseUint(form.SucursalID, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("sucursal_id invalido: %w", err)
	}
	return uint(perfilID), uint(sucursalID), nil
}

func aliasONulo(alias string) *string {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return nil
	}
	return &alias
}
