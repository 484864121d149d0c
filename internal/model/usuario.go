package model

// Usuario is an administered user record. Clave is the business key: unique
// at creation time and never editable afterwards. Nip length (max 5) is
// enforced at the service boundary, not by the schema.
type Usuario struct {
	ID         uint   `gorm:"primaryKey"`
	Clave      string `gorm:"uniqueIndex;not null"`
	Nombre     string `gorm:"not null"`
	Alias      *string
	Nip        string `gorm:"not null"`
	PerfilID   uint   `gorm:"not null"`
	SucursalID uint   `gorm:"not null"`
}

func (Usuario) TableName() string { return "usuarios" }
