package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Peran yang dikenal sistem. Satpam ("guard") mengonfirmasi absensi
// karyawan; admin mengelola data dan laporan.
const (
	RoleAdmin = "admin"
	RoleGuard = "guard"
	RoleUser  = "user"
)

type User struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"column:name;type:varchar(255);not null"`
	Email     string         `gorm:"column:email;type:text;not null;uniqueIndex:uq_user_email"`
	Phone     *string        `gorm:"column:phone;type:varchar(30)"`
	Password  string         `gorm:"column:password;type:text;not null"`
	Role      string         `gorm:"column:role;type:varchar(50);not null;default:user"`
	IsActive  bool           `gorm:"column:is_active;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}
