package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel representa a tabela users
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"size:100;not null" json:"user_name"`
	Email     string    `gorm:"size:255;unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	GoogleID  *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
