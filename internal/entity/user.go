package entity

import "time"

const (
	UserRoleAdmin = "admin"
	UserRoleUser  = "user"
)

// DbUser represents a persisted recommender account.
type DbUser struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email      string `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Name       string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Major      string `gorm:"column:major;type:varchar(255)" json:"major"`
	Phone      string `gorm:"column:phone;type:varchar(64)" json:"phone"`
	Expertise  string `gorm:"column:expertise;type:text" json:"expertise"`
	Role       string `gorm:"column:role;type:varchar(50);index;not null" json:"role"`
	UniqueLink string `gorm:"column:unique_link;type:varchar(255);not null" json:"unique_link"`
	IsActive   bool   `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

// TableName overrides default pluralised name.
func (DbUser) TableName() string {
	return "users"
}

// UserSummary is the user description returned to clients.
type UserSummary struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Major      string    `json:"major"`
	Phone      string    `json:"phone"`
	Expertise  string    `json:"expertise"`
	Role       string    `json:"role"`
	UniqueLink string    `json:"unique_link"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserQuery supports listing users with pagination.
type UserQuery struct {
	BaseParams
	Role    string `json:"role" form:"role" query:"role"`
	Keyword string `json:"keyword" form:"keyword" query:"keyword"`
}

type AuthLoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type AuthRegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Major     string `json:"major"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"required,email"`
	Expertise string `json:"expertise"`
}

type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      UserSummary `json:"user"`
}

type UserCreateRequest struct {
	Name      string `json:"name" binding:"required"`
	Major     string `json:"major"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"required,email"`
	Expertise string `json:"expertise"`
	Role      string `json:"role" binding:"required"`
	IsActive  *bool  `json:"is_active"`
}

type UserUpdateRequest struct {
	Name      *string `json:"name,omitempty"`
	Major     *string `json:"major,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Expertise *string `json:"expertise,omitempty"`
	Role      *string `json:"role,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type UserListResponse struct {
	Users []UserSummary `json:"users"`
	Meta  *Meta         `json:"meta"`
}
