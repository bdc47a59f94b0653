package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleOwner         = "OWNER"
	RoleAdmin         = "ADMIN"
	RoleHR            = "HR"
	RoleRecruiter     = "RECRUITER"
	RoleHiringManager = "HIRING_MANAGER"
	RoleInterviewer   = "INTERVIEWER"
)

var roles = map[string]bool{
	RoleOwner:         true,
	RoleAdmin:         true,
	RoleHR:            true,
	RoleRecruiter:     true,
	RoleHiringManager: true,
	RoleInterviewer:   true,
}

func IsValidRole(role string) bool {
	return roles[role]
}

// User is a hiring-team account sharing the users table with auth.
type User struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	Name      string         `gorm:"column:name;type:varchar(255);not null"`
	Role      string         `gorm:"column:role;type:varchar(50);not null;default:'RECRUITER'"`
	Email     string         `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Password  string         `gorm:"column:password;type:varchar(255);not null"`
	IsActive  bool           `gorm:"column:is_active;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string { return "users" }

// UserRole links a user to an rbac role; casbin groupings are built from it.
type UserRole struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

func (UserRole) TableName() string { return "user_roles" }

type UserWithRolesRow struct {
	ID        string
	Name      string
	Email     string
	Role      string
	IsActive  bool
	RolesRaw  string
	CreatedAt time.Time
}
