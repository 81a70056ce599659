package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/users/auth/model"
)

// SeedSuperadmin bootstraps the first superadmin from env when the users
// table is empty. A populated table means the system is already claimed and
// the seeder does nothing.
func SeedSuperadmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := configs.SeedAdminEmail
	password := configs.SeedAdminPassword
	if email == "" || password == "" {
		log.Println("[SEED] no superadmin credentials configured, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.UserModel{
		UserFullName:     configs.SeedAdminName,
		UserEmail:        email,
		UserPasswordHash: string(hash),
		UserRole:         constants.RoleSuperadmin,
		UserIsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("[SEED] superadmin %s created", email)
	return nil
}
