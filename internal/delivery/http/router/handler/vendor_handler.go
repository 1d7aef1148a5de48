package handler

import (
	"net/http"

	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/response"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VendorHandler serves vendor profiles and storefronts.
type VendorHandler struct {
	uc usecase.VendorUsecase
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// RegisterVendor turns the caller into a vendor.
func (h *VendorHandler) RegisterVendor(c echo.Context) error {
	var input usecase.RegisterVendorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	vendor, err := h.uc.RegisterVendor(c.Request().Context(), currentUserID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toVendorResponse(vendor), "Vendor profile created")
}

// GetOwnVendor returns the caller's vendor profile.
func (h *VendorHandler) GetOwnVendor(c echo.Context) error {
	vendor, err := h.uc.GetVendorByUser(c.Request().Context(), currentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVendorResponse(vendor), "")
}

// GetVendor returns a vendor profile by ID.
func (h *VendorHandler) GetVendor(c echo.Context) error {
	vendorID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	vendor, err := h.uc.GetVendor(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVendorResponse(vendor), "")
}

// ListVendors pages through vendor profiles.
func (h *VendorHandler) ListVendors(c echo.Context) error {
	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 20)

	vendors, err := h.uc.ListVendors(c.Request().Context(), offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVendorResponses(vendors), "")
}

// UpdateVendor applies a partial update to the caller's vendor profile.
func (h *VendorHandler) UpdateVendor(c echo.Context) error {
	var input usecase.UpdateVendorInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	vendor, err := h.uc.UpdateVendor(c.Request().Context(), currentUserID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVendorResponse(vendor), "Vendor profile updated")
}

// CreateStore opens a new storefront for the caller's vendor profile.
func (h *VendorHandler) CreateStore(c echo.Context) error {
	var input usecase.StoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	store, err := h.uc.CreateStore(c.Request().Context(), currentUserID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toStoreResponse(store), "Store created")
}

// GetStore returns a store by ID.
func (h *VendorHandler) GetStore(c echo.Context) error {
	storeID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	store, err := h.uc.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreResponse(store), "")
}

// GetStoreBySlug returns a store by its slug.
func (h *VendorHandler) GetStoreBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	store, err := h.uc.GetStoreBySlug(c.Request().Context(), slug)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreResponse(store), "")
}

// ListStores pages through all stores.
func (h *VendorHandler) ListStores(c echo.Context) error {
	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 20)

	stores, err := h.uc.ListStores(c.Request().Context(), offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreResponses(stores), "")
}

// ListOwnStores returns the caller's storefronts.
func (h *VendorHandler) ListOwnStores(c echo.Context) error {
	stores, err := h.uc.ListOwnStores(c.Request().Context(), currentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreResponses(stores), "")
}

// UpdateStore replaces a store the caller owns.
func (h *VendorHandler) UpdateStore(c echo.Context) error {
	storeID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.StoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), currentUserID(c), storeID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreResponse(store), "Store updated")
}

// DeleteStore removes a store the caller owns.
func (h *VendorHandler) DeleteStore(c echo.Context) error {
	storeID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteStore(c.Request().Context(), currentUserID(c), storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Store deleted")
}
