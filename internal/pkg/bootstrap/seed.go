// Package bootstrap seeds the operator account and the default plan on
// first boot.
package bootstrap

import (
	"errors"
	"log"

	"github.com/AKM-dv/servicemate/app/models"
	"github.com/AKM-dv/servicemate/internal/pkg/catalog"
	"github.com/AKM-dv/servicemate/internal/pkg/env"
	"gorm.io/gorm"
)

const fallbackPin = "130323"

// Seed ensures the admin user, its login PIN and the default plan exist.
func Seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return catalog.NewService(db).EnsureSeeded()
}

func seedAdmin(db *gorm.DB) error {
	email := env.GetEnv("ADMIN_EMAIL", "admin@servicemate.com")
	pin := adminPin()

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		passwordHash, err := models.HashSecret(env.GetEnv("ADMIN_PASSWORD", "changeme"))
		if err != nil {
			return err
		}
		pinHash, err := models.HashSecret(pin)
		if err != nil {
			return err
		}
		user = models.User{Email: email, PasswordHash: passwordHash, PinHash: pinHash}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("Seeded default admin user %s", email)
		return nil
	}
	if err != nil {
		return err
	}

	// Keep the stored PIN in sync with the configured one.
	if user.PinHash == "" || !models.CheckSecretHash(pin, user.PinHash) {
		pinHash, err := models.HashSecret(pin)
		if err != nil {
			return err
		}
		return db.Model(&user).Update("pin_hash", pinHash).Error
	}
	return nil
}

func adminPin() string {
	pin := env.GetEnv("ADMIN_PIN", fallbackPin)
	if len(pin) != models.PinLength || !isDigits(pin) {
		log.Printf("ADMIN_PIN must be a %d-digit number; using default", models.PinLength)
		return fallbackPin
	}
	return pin
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
