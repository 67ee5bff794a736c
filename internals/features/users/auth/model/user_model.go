// internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey"`

	UserEmail    string `json:"user_email"     gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	UserFullName string `json:"user_full_name" gorm:"column:user_full_name;type:varchar(200);not null"`

	// bcrypt; NULL untuk akun yang hanya login via Google
	UserPasswordHash *string `json:"-" gorm:"column:user_password_hash;type:varchar(100)"`

	// sub claim dari Google ID token
	UserGoogleSub *string `json:"-" gorm:"column:user_google_sub;type:varchar(64);uniqueIndex:uq_users_google_sub"`

	UserRole string `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'teacher'"` // admin | teacher

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;not null;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
