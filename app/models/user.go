package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// PinLength is the required length of the operator login PIN.
const PinLength = 6

// User is the single operator account. Login is PIN-based; the password is
// kept for recovery tooling.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;type:varchar(191);not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	PinHash      string    `gorm:"type:varchar(255);default:null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckSecretHash compares the given secret with the stored hash.
func CheckSecretHash(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))

	return err == nil
}
