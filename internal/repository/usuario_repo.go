package repository

import (
	"context"
	"errors"

	"github.com/aaaalfred/usuariosrecompensas/internal/apperror"
	"github.com/aaaalfred/usuariosrecompensas/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	// BuscarPorSucursal returns the usuarios of a sucursal whose clave ends
	// with the given 2-character suffix, ordered by nombre.
	BuscarPorSucursal(ctx context.Context, sucursalID uint, digitos string) ([]model.Usuario, error)
	// CreateUnique inserts u only if no usuario with the same clave exists.
	CreateUnique(ctx context.Context, u *model.Usuario) error
	Update(ctx context.Context, u *model.Usuario) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ErrUsuarioNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) BuscarPorSucursal(ctx context.Context, sucursalID uint, digitos string) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.WithContext(ctx).
		Where("sucursal_id = ? AND clave LIKE ?", sucursalID, "%"+digitos).
		Order("nombre ASC").
		Find(&usuarios).Error
	return usuarios, err
}

// CreateUnique runs the clave existence check and the insert inside one
// transaction so two concurrent creates cannot both pass the check. A
// duplicate-key error from the schema's unique index maps to the same
// conflict, as a second line of defense.
func (r *usuarioRepo) CreateUnique(ctx context.Context, u *model.Usuario) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Usuario{}).Where("clave = ?", u.Clave).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperror.ErrClaveDuplicada
		}
		return tx.Create(u).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.ErrClaveDuplicada
	}
	return err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}
