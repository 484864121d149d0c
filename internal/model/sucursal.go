package model

// Sucursal is the branch catalog. Only rows with Tipo = "MAYOREO" are ever
// shown by this application. Read-only.
type Sucursal struct {
	ID       uint   `gorm:"primaryKey"`
	Sucursal string `gorm:"not null"`
	Tipo     string `gorm:"not null"`
}

// TableName avoids GORM's default pluralization ("sucursals").
func (Sucursal) TableName() string { return "sucursales" }
