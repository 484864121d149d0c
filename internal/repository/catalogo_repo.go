package repository

import (
	"context"

	"github.com/aaaalfred/usuariosrecompensas/internal/model"

	"gorm.io/gorm"
)

// CatalogoRepository reads the reference catalogs used by the search and
// form screens. Both catalogs are read-only for this application.
type CatalogoRepository interface {
	ListarPerfiles(ctx context.Context) ([]model.Perfil, error)
	// ListarSucursales returns only MAYOREO branches.
	ListarSucursales(ctx context.Context) ([]model.Sucursal, error)
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) ListarPerfiles(ctx context.Context) ([]model.Perfil, error) {
	var perfiles []model.Perfil
	err := r.db.WithContext(ctx).Order("perfil ASC").Find(&perfiles).Error
	return perfiles, err
}

func (r *catalogoRepo) ListarSucursales(ctx context.Context) ([]model.Sucursal, error) {
	var sucursales []model.Sucursal
	err := r.db.WithContext(ctx).
		Where("tipo = ?", "MAYOREO").
		Order("sucursal ASC").
		Find(&sucursales).Error
	return sucursales, err
}
