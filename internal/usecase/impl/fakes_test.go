package impl

import (
	"context"
	"io"
	"log/slog"

	"github.com/AZHIK/africa-soko-backend/config"
	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/domain/service"
)

// Hand-rolled fakes: each method delegates to an optional function field and
// panics on an unexpected call, so tests state exactly what they stub.

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SecretKey:                 "test-secret",
			AccessTokenExpireMinutes:  60,
			RefreshTokenExpireDays:    30,
			GoogleUserDefaultPassword: "placeholder-password",
			DefaultRoleName:           "customer",
		},
		Checkout: &config.CheckoutConfig{
			ShippingFeePerStore: 5,
			TaxRate:             0.1,
		},
	}

	return cfg
}

type fakeUserRepo struct {
	findByID    func(ctx context.Context, id int64) (*entity.User, error)
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	create      func(ctx context.Context, user *entity.User) error
	update      func(ctx context.Context, user *entity.User) error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if f.findByID == nil {
		panic("unexpected call: FindByID")
	}

	return f.findByID(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findByEmail == nil {
		panic("unexpected call: FindByEmail")
	}

	return f.findByEmail(ctx, email)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.create == nil {
		panic("unexpected call: Create")
	}

	return f.create(ctx, user)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.update == nil {
		panic("unexpected call: Update")
	}

	return f.update(ctx, user)
}

type fakeRoleRepo struct {
	findRoleByName        func(ctx context.Context, name string) (*entity.Role, error)
	findFirstRoleByUserID func(ctx context.Context, userID int64) (*entity.Role, error)
	assignRole            func(ctx context.Context, userID, roleID int64) error
}

func (f *fakeRoleRepo) FindRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	if f.findRoleByName == nil {
		panic("unexpected call: FindRoleByName")
	}

	return f.findRoleByName(ctx, name)
}

func (f *fakeRoleRepo) FindFirstRoleByUserID(ctx context.Context, userID int64) (*entity.Role, error) {
	if f.findFirstRoleByUserID == nil {
		panic("unexpected call: FindFirstRoleByUserID")
	}

	return f.findFirstRoleByUserID(ctx, userID)
}

func (f *fakeRoleRepo) AssignRole(ctx context.Context, userID, roleID int64) error {
	if f.assignRole == nil {
		panic("unexpected call: AssignRole")
	}

	return f.assignRole(ctx, userID, roleID)
}

func (f *fakeRoleRepo) EnsureRole(ctx context.Context, name, description string) (*entity.Role, error) {
	panic("unexpected call: EnsureRole")
}

func (f *fakeRoleRepo) EnsurePermission(ctx context.Context, name, code, description string) (*entity.Permission, error) {
	panic("unexpected call: EnsurePermission")
}

func (f *fakeRoleRepo) GrantPermission(ctx context.Context, roleID, permissionID int64) error {
	panic("unexpected call: GrantPermission")
}

type fakeAddressRepo struct {
	createAddress            func(ctx context.Context, address *entity.Address) error
	findAddressByID          func(ctx context.Context, userID, id int64) (*entity.Address, error)
	findAddressesByUser      func(ctx context.Context, userID int64) ([]*entity.Address, error)
	findDefaultAddressByUser func(ctx context.Context, userID int64) (*entity.Address, error)
	updateAddress            func(ctx context.Context, address *entity.Address) error
	deleteAddress            func(ctx context.Context, userID, id int64) error
	clearDefaultAddresses    func(ctx context.Context, userID int64) error
}

func (f *fakeAddressRepo) CreateAddress(ctx context.Context, address *entity.Address) error {
	if f.createAddress == nil {
		panic("unexpected call: CreateAddress")
	}

	return f.createAddress(ctx, address)
}

func (f *fakeAddressRepo) FindAddressByID(ctx context.Context, userID, id int64) (*entity.Address, error) {
	if f.findAddressByID == nil {
		panic("unexpected call: FindAddressByID")
	}

	return f.findAddressByID(ctx, userID, id)
}

func (f *fakeAddressRepo) FindAddressesByUser(ctx context.Context, userID int64) ([]*entity.Address, error) {
	if f.findAddressesByUser == nil {
		panic("unexpected call: FindAddressesByUser")
	}

	return f.findAddressesByUser(ctx, userID)
}

func (f *fakeAddressRepo) FindDefaultAddressByUser(ctx context.Context, userID int64) (*entity.Address, error) {
	if f.findDefaultAddressByUser == nil {
		panic("unexpected call: FindDefaultAddressByUser")
	}

	return f.findDefaultAddressByUser(ctx, userID)
}

func (f *fakeAddressRepo) UpdateAddress(ctx context.Context, address *entity.Address) error {
	if f.updateAddress == nil {
		panic("unexpected call: UpdateAddress")
	}

	return f.updateAddress(ctx, address)
}

func (f *fakeAddressRepo) DeleteAddress(ctx context.Context, userID, id int64) error {
	if f.deleteAddress == nil {
		panic("unexpected call: DeleteAddress")
	}

	return f.deleteAddress(ctx, userID, id)
}

func (f *fakeAddressRepo) ClearDefaultAddresses(ctx context.Context, userID int64) error {
	if f.clearDefaultAddresses == nil {
		panic("unexpected call: ClearDefaultAddresses")
	}

	return f.clearDefaultAddresses(ctx, userID)
}

type fakeVendorRepo struct {
	createVendor       func(ctx context.Context, vendor *entity.Vendor) error
	findVendorByID     func(ctx context.Context, id int64) (*entity.Vendor, error)
	findVendorByUserID func(ctx context.Context, userID int64) (*entity.Vendor, error)
	listVendors        func(ctx context.Context, offset, limit int) ([]*entity.Vendor, error)
	updateVendor       func(ctx context.Context, vendor *entity.Vendor) error
	createStore        func(ctx context.Context, store *entity.Store) error
	findStoreByID      func(ctx context.Context, id int64) (*entity.Store, error)
	findStoreBySlug    func(ctx context.Context, slug string) (*entity.Store, error)
	listStoresByVendor func(ctx context.Context, vendorID int64) ([]*entity.Store, error)
	listStores         func(ctx context.Context, offset, limit int) ([]*entity.Store, error)
	updateStore        func(ctx context.Context, store *entity.Store) error
	deleteStore        func(ctx context.Context, id int64) error
}

func (f *fakeVendorRepo) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	if f.createVendor == nil {
		panic("unexpected call: CreateVendor")
	}

	return f.createVendor(ctx, vendor)
}

func (f *fakeVendorRepo) FindVendorByID(ctx context.Context, id int64) (*entity.Vendor, error) {
	if f.findVendorByID == nil {
		panic("unexpected call: FindVendorByID")
	}

	return f.findVendorByID(ctx, id)
}

func (f *fakeVendorRepo) FindVendorByUserID(ctx context.Context, userID int64) (*entity.Vendor, error) {
	if f.findVendorByUserID == nil {
		panic("unexpected call: FindVendorByUserID")
	}

	return f.findVendorByUserID(ctx, userID)
}

func (f *fakeVendorRepo) ListVendors(ctx context.Context, offset, limit int) ([]*entity.Vendor, error) {
	if f.listVendors == nil {
		panic("unexpected call: ListVendors")
	}

	return f.listVendors(ctx, offset, limit)
}

func (f *fakeVendorRepo) UpdateVendor(ctx context.Context, vendor *entity.Vendor) error {
	if f.updateVendor == nil {
		panic("unexpected call: UpdateVendor")
	}

	return f.updateVendor(ctx, vendor)
}

func (f *fakeVendorRepo) CreateStore(ctx context.Context, store *entity.Store) error {
	if f.createStore == nil {
		panic("unexpected call: CreateStore")
	}

	return f.createStore(ctx, store)
}

func (f *fakeVendorRepo) FindStoreByID(ctx context.Context, id int64) (*entity.Store, error) {
	if f.findStoreByID == nil {
		panic("unexpected call: FindStoreByID")
	}

	return f.findStoreByID(ctx, id)
}

func (f *fakeVendorRepo) FindStoreBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	if f.findStoreBySlug == nil {
		panic("unexpected call: FindStoreBySlug")
	}

	return f.findStoreBySlug(ctx, slug)
}

func (f *fakeVendorRepo) ListStoresByVendor(ctx context.Context, vendorID int64) ([]*entity.Store, error) {
	if f.listStoresByVendor == nil {
		panic("unexpected call: ListStoresByVendor")
	}

	return f.listStoresByVendor(ctx, vendorID)
}

func (f *fakeVendorRepo) ListStores(ctx context.Context, offset, limit int) ([]*entity.Store, error) {
	if f.listStores == nil {
		panic("unexpected call: ListStores")
	}

	return f.listStores(ctx, offset, limit)
}

func (f *fakeVendorRepo) UpdateStore(ctx context.Context, store *entity.Store) error {
	if f.updateStore == nil {
		panic("unexpected call: UpdateStore")
	}

	return f.updateStore(ctx, store)
}

func (f *fakeVendorRepo) DeleteStore(ctx context.Context, id int64) error {
	if f.deleteStore == nil {
		panic("unexpected call: DeleteStore")
	}

	return f.deleteStore(ctx, id)
}

type fakeCatalogRepo struct {
	createProduct        func(ctx context.Context, product *entity.Product) error
	findProductByID      func(ctx context.Context, id int64) (*entity.Product, error)
	findProductBySlug    func(ctx context.Context, slug string) (*entity.Product, error)
	findProductsByIDs    func(ctx context.Context, ids []int64) ([]*entity.Product, error)
	listProducts         func(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error)
	updateProduct        func(ctx context.Context, product *entity.Product) error
	deleteProduct        func(ctx context.Context, id int64) error
	createCategory       func(ctx context.Context, category *entity.Category) error
	findCategoryByID     func(ctx context.Context, id int64) (*entity.Category, error)
	listCategories       func(ctx context.Context) ([]*entity.Category, error)
	updateCategory       func(ctx context.Context, category *entity.Category) error
	deleteCategory       func(ctx context.Context, id int64) error
	createImage          func(ctx context.Context, image *entity.ProductImage) error
	deleteImage          func(ctx context.Context, id int64) error
	createReview         func(ctx context.Context, review *entity.Review) error
	listReviewsByProduct func(ctx context.Context, productID int64) ([]*entity.Review, error)
}

func (f *fakeCatalogRepo) CreateProduct(ctx context.Context, product *entity.Product) error {
	if f.createProduct == nil {
		panic("unexpected call: CreateProduct")
	}

	return f.createProduct(ctx, product)
}

func (f *fakeCatalogRepo) FindProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	if f.findProductByID == nil {
		panic("unexpected call: FindProductByID")
	}

	return f.findProductByID(ctx, id)
}

func (f *fakeCatalogRepo) FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	if f.findProductBySlug == nil {
		panic("unexpected call: FindProductBySlug")
	}

	return f.findProductBySlug(ctx, slug)
}

func (f *fakeCatalogRepo) FindProductsByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if f.findProductsByIDs == nil {
		panic("unexpected call: FindProductsByIDs")
	}

	return f.findProductsByIDs(ctx, ids)
}

func (f *fakeCatalogRepo) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	if f.listProducts == nil {
		panic("unexpected call: ListProducts")
	}

	return f.listProducts(ctx, filter)
}

func (f *fakeCatalogRepo) UpdateProduct(ctx context.Context, product *entity.Product) error {
	if f.updateProduct == nil {
		panic("unexpected call: UpdateProduct")
	}

	return f.updateProduct(ctx, product)
}

func (f *fakeCatalogRepo) DeleteProduct(ctx context.Context, id int64) error {
	if f.deleteProduct == nil {
		panic("unexpected call: DeleteProduct")
	}

	return f.deleteProduct(ctx, id)
}

func (f *fakeCatalogRepo) CreateCategory(ctx context.Context, category *entity.Category) error {
	if f.createCategory == nil {
		panic("unexpected call: CreateCategory")
	}

	return f.createCategory(ctx, category)
}

func (f *fakeCatalogRepo) FindCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	if f.findCategoryByID == nil {
		panic("unexpected call: FindCategoryByID")
	}

	return f.findCategoryByID(ctx, id)
}

func (f *fakeCatalogRepo) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	if f.listCategories == nil {
		panic("unexpected call: ListCategories")
	}

	return f.listCategories(ctx)
}

func (f *fakeCatalogRepo) UpdateCategory(ctx context.Context, category *entity.Category) error {
	if f.updateCategory == nil {
		panic("unexpected call: UpdateCategory")
	}

	return f.updateCategory(ctx, category)
}

func (f *fakeCatalogRepo) DeleteCategory(ctx context.Context, id int64) error {
	if f.deleteCategory == nil {
		panic("unexpected call: DeleteCategory")
	}

	return f.deleteCategory(ctx, id)
}

func (f *fakeCatalogRepo) CreateImage(ctx context.Context, image *entity.ProductImage) error {
	if f.createImage == nil {
		panic("unexpected call: CreateImage")
	}

	return f.createImage(ctx, image)
}

func (f *fakeCatalogRepo) DeleteImage(ctx context.Context, id int64) error {
	if f.deleteImage == nil {
		panic("unexpected call: DeleteImage")
	}

	return f.deleteImage(ctx, id)
}

func (f *fakeCatalogRepo) CreateReview(ctx context.Context, review *entity.Review) error {
	if f.createReview == nil {
		panic("unexpected call: CreateReview")
	}

	return f.createReview(ctx, review)
}

func (f *fakeCatalogRepo) ListReviewsByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	if f.listReviewsByProduct == nil {
		panic("unexpected call: ListReviewsByProduct")
	}

	return f.listReviewsByProduct(ctx, productID)
}

type fakeCartRepo struct {
	upsertCartItem          func(ctx context.Context, item *entity.CartItem) error
	findCartItemsByUser     func(ctx context.Context, userID int64) ([]*entity.CartItem, error)
	deleteCartItem          func(ctx context.Context, userID, productID int64) error
	clearCart               func(ctx context.Context, userID int64) error
	addWishlistItem         func(ctx context.Context, item *entity.WishlistItem) error
	findWishlistItemsByUser func(ctx context.Context, userID int64) ([]*entity.WishlistItem, error)
	deleteWishlistItem      func(ctx context.Context, userID, productID int64) error
}

func (f *fakeCartRepo) UpsertCartItem(ctx context.Context, item *entity.CartItem) error {
	if f.upsertCartItem == nil {
		panic("unexpected call: UpsertCartItem")
	}

	return f.upsertCartItem(ctx, item)
}

func (f *fakeCartRepo) FindCartItemsByUser(ctx context.Context, userID int64) ([]*entity.CartItem, error) {
	if f.findCartItemsByUser == nil {
		panic("unexpected call: FindCartItemsByUser")
	}

	return f.findCartItemsByUser(ctx, userID)
}

func (f *fakeCartRepo) DeleteCartItem(ctx context.Context, userID, productID int64) error {
	if f.deleteCartItem == nil {
		panic("unexpected call: DeleteCartItem")
	}

	return f.deleteCartItem(ctx, userID, productID)
}

func (f *fakeCartRepo) ClearCart(ctx context.Context, userID int64) error {
	if f.clearCart == nil {
		panic("unexpected call: ClearCart")
	}

	return f.clearCart(ctx, userID)
}

func (f *fakeCartRepo) AddWishlistItem(ctx context.Context, item *entity.WishlistItem) error {
	if f.addWishlistItem == nil {
		panic("unexpected call: AddWishlistItem")
	}

	return f.addWishlistItem(ctx, item)
}

func (f *fakeCartRepo) FindWishlistItemsByUser(ctx context.Context, userID int64) ([]*entity.WishlistItem, error) {
	if f.findWishlistItemsByUser == nil {
		panic("unexpected call: FindWishlistItemsByUser")
	}

	return f.findWishlistItemsByUser(ctx, userID)
}

func (f *fakeCartRepo) DeleteWishlistItem(ctx context.Context, userID, productID int64) error {
	if f.deleteWishlistItem == nil {
		panic("unexpected call: DeleteWishlistItem")
	}

	return f.deleteWishlistItem(ctx, userID, productID)
}

type fakeOrderRepo struct {
	createOrder       func(ctx context.Context, order *entity.Order) error
	createOrderItems  func(ctx context.Context, items []*entity.OrderItem) error
	findOrderByID     func(ctx context.Context, id int64) (*entity.Order, error)
	listOrdersByUser  func(ctx context.Context, userID int64, offset, limit int) ([]*entity.Order, error)
	listOrdersByStore func(ctx context.Context, storeID int64, offset, limit int) ([]*entity.Order, error)
	updateOrderStatus func(ctx context.Context, id int64, status entity.OrderStatus) error
	createPayment     func(ctx context.Context, payment *entity.Payment) error
	createDelivery    func(ctx context.Context, delivery *entity.Delivery) error
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order *entity.Order) error {
	if f.createOrder == nil {
		panic("unexpected call: CreateOrder")
	}

	return f.createOrder(ctx, order)
}

func (f *fakeOrderRepo) CreateOrderItems(ctx context.Context, items []*entity.OrderItem) error {
	if f.createOrderItems == nil {
		panic("unexpected call: CreateOrderItems")
	}

	return f.createOrderItems(ctx, items)
}

func (f *fakeOrderRepo) FindOrderByID(ctx context.Context, id int64) (*entity.Order, error) {
	if f.findOrderByID == nil {
		panic("unexpected call: FindOrderByID")
	}

	return f.findOrderByID(ctx, id)
}

func (f *fakeOrderRepo) ListOrdersByUser(ctx context.Context, userID int64, offset, limit int) ([]*entity.Order, error) {
	if f.listOrdersByUser == nil {
		panic("unexpected call: ListOrdersByUser")
	}

	return f.listOrdersByUser(ctx, userID, offset, limit)
}

func (f *fakeOrderRepo) ListOrdersByStore(ctx context.Context, storeID int64, offset, limit int) ([]*entity.Order, error) {
	if f.listOrdersByStore == nil {
		panic("unexpected call: ListOrdersByStore")
	}

	return f.listOrdersByStore(ctx, storeID, offset, limit)
}

func (f *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	if f.updateOrderStatus == nil {
		panic("unexpected call: UpdateOrderStatus")
	}

	return f.updateOrderStatus(ctx, id, status)
}

func (f *fakeOrderRepo) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	if f.createPayment == nil {
		panic("unexpected call: CreatePayment")
	}

	return f.createPayment(ctx, payment)
}

func (f *fakeOrderRepo) CreateDelivery(ctx context.Context, delivery *entity.Delivery) error {
	if f.createDelivery == nil {
		panic("unexpected call: CreateDelivery")
	}

	return f.createDelivery(ctx, delivery)
}

// fakeRepoFactory hands out the fakes above; fakeTxManager runs the callback
// directly, so "transactional" paths execute against the same fakes.
type fakeRepoFactory struct {
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	addressRepo repository.AddressRepository
	vendorRepo  repository.VendorRepository
	catalogRepo repository.CatalogRepository
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository       { return f.userRepo }
func (f *fakeRepoFactory) RoleRepo() repository.RoleRepository       { return f.roleRepo }
func (f *fakeRepoFactory) AddressRepo() repository.AddressRepository { return f.addressRepo }
func (f *fakeRepoFactory) VendorRepo() repository.VendorRepository   { return f.vendorRepo }
func (f *fakeRepoFactory) CatalogRepo() repository.CatalogRepository { return f.catalogRepo }
func (f *fakeRepoFactory) CartRepo() repository.CartRepository       { return f.cartRepo }
func (f *fakeRepoFactory) OrderRepo() repository.OrderRepository     { return f.orderRepo }

type fakeTxManager struct {
	factory  *fakeRepoFactory
	executed int
}

func (f *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	f.executed++

	return fn(f.factory)
}

type fakeHasher struct {
	hash  func(password string) (string, error)
	check func(password, hash string) bool
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hash == nil {
		return "hashed:" + password, nil
	}

	return f.hash(password)
}

func (f *fakeHasher) Check(password, hash string) bool {
	if f.check == nil {
		return hash == "hashed:"+password
	}

	return f.check(password, hash)
}

type fakeTokenService struct {
	generateAccess  func(userID int64, isAdmin bool) (string, error)
	generateRefresh func(userID int64, isAdmin bool) (string, error)
	validate        func(tokenString string) (*service.Claims, error)
}

func (f *fakeTokenService) GenerateAccessToken(userID int64, isAdmin bool) (string, error) {
	if f.generateAccess == nil {
		return "access-token", nil
	}

	return f.generateAccess(userID, isAdmin)
}

func (f *fakeTokenService) GenerateRefreshToken(userID int64, isAdmin bool) (string, error) {
	if f.generateRefresh == nil {
		return "refresh-token", nil
	}

	return f.generateRefresh(userID, isAdmin)
}

func (f *fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	if f.validate == nil {
		panic("unexpected call: ValidateToken")
	}

	return f.validate(tokenString)
}

type fakeGoogleVerifier struct {
	verify func(ctx context.Context, idToken string) (*service.GoogleUser, error)
}

func (f *fakeGoogleVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.GoogleUser, error) {
	if f.verify == nil {
		panic("unexpected call: VerifyIDToken")
	}

	return f.verify(ctx, idToken)
}
