package postgres

import (
	"context"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	domainerrors "github.com/AZHIK/africa-soko-backend/internal/domain/errors"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository implements the domain.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindRoleByName retrieves a role by its unique name.
func (repo *roleRepository) FindRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	var roleM model.RoleModel

	err := repo.db.WithContext(ctx).Where("name = ?", name).First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return toRoleDomain(&roleM), nil
}

// FindFirstRoleByUserID returns the first role linked to a user.
func (repo *roleRepository) FindFirstRoleByUserID(ctx context.Context, userID int64) (*entity.Role, error) {
	var roleM model.RoleModel

	err := repo.db.WithContext(ctx).
		Joins("JOIN user_role_links ON user_role_links.role_id = roles.id").
		Where("user_role_links.user_id = ?", userID).
		Order("user_role_links.id").
		First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by user id")
	}

	return toRoleDomain(&roleM), nil
}

// AssignRole links a role to a user. Assigning an already-linked role is a no-op.
func (repo *roleRepository) AssignRole(ctx context.Context, userID, roleID int64) error {
	link := model.UserRoleLinkModel{UserID: userID, RoleID: roleID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("user or role does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign role")
	}

	return nil
}

// EnsureRole creates a role by name if it does not exist and returns it.
func (repo *roleRepository) EnsureRole(ctx context.Context, name, description string) (*entity.Role, error) {
	roleM := model.RoleModel{Name: name, Description: description}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&roleM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure role")
	}

	// On conflict the generated ID is not populated; re-read by name.
	if roleM.ID == 0 {
		return repo.FindRoleByName(ctx, name)
	}

	return toRoleDomain(&roleM), nil
}

// EnsurePermission creates a permission by code if it does not exist and returns it.
func (repo *roleRepository) EnsurePermission(ctx context.Context, name, code, description string) (*entity.Permission, error) {
	permM := model.PermissionModel{Name: name, Code: code, Description: description}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(&permM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure permission")
	}

	if permM.ID == 0 {
		if err := repo.db.WithContext(ctx).Where("code = ?", code).First(&permM).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find permission by code")
		}
	}

	return &entity.Permission{
		ID:          permM.ID,
		Name:        permM.Name,
		Code:        permM.Code,
		Description: permM.Description,
		CreatedAt:   permM.CreatedAt,
	}, nil
}

// GrantPermission links a permission to a role, idempotently.
func (repo *roleRepository) GrantPermission(ctx context.Context, roleID, permissionID int64) error {
	link := model.RolePermissionLinkModel{RoleID: roleID, PermissionID: permissionID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to grant permission")
	}

	return nil
}

func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
