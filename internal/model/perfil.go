package model

// Perfil is the profile/role catalog. Read-only for this application.
type Perfil struct {
	ID     uint   `gorm:"primaryKey"`
	Perfil string `gorm:"not null"`
}

// TableName avoids GORM's default pluralization ("perfils").
func (Perfil) TableName() string { return "perfiles" }
