package auth

import "time"

type RefreshToken struct {
	ID         uint   `gorm:"primaryKey"`
	AdvogadoID string `gorm:"type:uuid;index"`
	FamilyID   string `gorm:"index"`
	Hash       string `gorm:"uniqueIndex"`
	IsAdmin    bool
	ExpiresAt  time.Time `gorm:"index"`
	RevokedAt  *time.Time
	CreatedAt  time.Time
}
