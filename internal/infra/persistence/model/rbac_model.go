package model

import "time"

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(64);unique;not null"`
	Description string `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// PermissionModel mirrors the 'permissions' table.
type PermissionModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(64);unique;not null"`
	Code        string `gorm:"type:varchar(64);unique;not null"`
	Description string `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PermissionModel) TableName() string {
	return "permissions"
}

// UserRoleLinkModel mirrors the 'user_role_links' table.
type UserRoleLinkModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     int64     `gorm:"not null;uniqueIndex:idx_user_role"`
	RoleID     int64     `gorm:"not null;uniqueIndex:idx_user_role"`
	AssignedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserRoleLinkModel) TableName() string {
	return "user_role_links"
}

// RolePermissionLinkModel mirrors the 'role_permission_links' table.
type RolePermissionLinkModel struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	RoleID       int64 `gorm:"not null;uniqueIndex:idx_role_permission"`
	PermissionID int64 `gorm:"not null;uniqueIndex:idx_role_permission"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RolePermissionLinkModel) TableName() string {
	return "role_permission_links"
}
