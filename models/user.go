package models

import "time"

type UserRole string

const (
	UserRolePemohon UserRole = "pemohon"
	UserRolePetugas UserRole = "petugas_ppid"
	UserRoleAdmin   UserRole = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     *string   `gorm:"size:100" json:"email"`
	FullName  *string   `gorm:"size:100" json:"full_name"`
	Phone     *string   `gorm:"size:20" json:"phone"`
	Role      UserRole  `gorm:"type:user_role;default:'pemohon';not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
