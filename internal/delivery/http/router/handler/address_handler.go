package handler

import (
	"net/http"

	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/response"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler serves the authenticated user's address book.
type AddressHandler struct {
	uc usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// CreateAddress adds an address to the caller's address book.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var input usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), currentUserID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address), "Address created")
}

// ListAddresses returns the caller's addresses, default first.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.uc.ListAddresses(c.Request().Context(), currentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponses(addresses), "")
}

// GetAddress returns one of the caller's addresses.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	addressID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	address, err := h.uc.GetAddress(c.Request().Context(), currentUserID(c), addressID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address), "")
}

// UpdateAddress replaces one of the caller's addresses.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	addressID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), currentUserID(c), addressID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address), "Address updated")
}

// DeleteAddress removes one of the caller's addresses.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	addressID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), currentUserID(c), addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted")
}

// SetDefaultAddress marks one address as the default shipping destination.
func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	addressID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.SetDefaultAddress(c.Request().Context(), currentUserID(c), addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Default address set")
}
