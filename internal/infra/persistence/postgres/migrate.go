package postgres

import (
	"context"
	"log/slog"

	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/errors"
	"github.com/AZHIK/africa-soko-backend/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Baseline roles ensured on every start. Role assignment happens elsewhere;
// seeding only guarantees the rows exist.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
)

// seededPermissions is the baseline permission set granted to admin.
var seededPermissions = []struct {
	name string
	code string
}{
	{"Manage users", "users:manage"},
	{"Manage vendors", "vendors:manage"},
	{"Manage catalog", "catalog:manage"},
	{"Manage orders", "orders:manage"},
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.UserModel{},
		&model.RoleModel{},
		&model.PermissionModel{},
		&model.UserRoleLinkModel{},
		&model.RolePermissionLinkModel{},
		&model.AddressModel{},
		&model.VendorModel{},
		&model.StoreModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.ProductImageModel{},
		&model.ReviewModel{},
		&model.CartItemModel{},
		&model.WishlistItemModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.PaymentModel{},
		&model.DeliveryModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// SeedRBAC ensures the baseline roles and permissions exist and that admin
// holds every seeded permission. Safe to run on every start.
func SeedRBAC(ctx context.Context, roleRepo repository.RoleRepository, logger *slog.Logger) error {
	adminRole, err := roleRepo.EnsureRole(ctx, RoleAdmin, "Full administrative access")
	if err != nil {
		return errors.Wrap(err, "failed to seed admin role")
	}
	if _, err := roleRepo.EnsureRole(ctx, RoleCustomer, "Default shopper role"); err != nil {
		return errors.Wrap(err, "failed to seed customer role")
	}
	if _, err := roleRepo.EnsureRole(ctx, RoleVendor, "Marketplace seller role"); err != nil {
		return errors.Wrap(err, "failed to seed vendor role")
	}

	for _, perm := range seededPermissions {
		permission, err := roleRepo.EnsurePermission(ctx, perm.name, perm.code, "")
		if err != nil {
			return errors.Wrapf(err, "failed to seed permission %s", perm.code)
		}
		if err := roleRepo.GrantPermission(ctx, adminRole.ID, permission.ID); err != nil {
			return errors.Wrapf(err, "failed to grant permission %s", perm.code)
		}
	}

	logger.Info("RBAC baseline seeded")

	return nil
}
