package handler

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/usecase"
	"campussell/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	cartUseCase *usecase.CartUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, cartUseCase *usecase.CartUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cartUseCase: cartUseCase,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"required,min=3"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Phone:    req.Phone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

func (h *AuthHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.authUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type updateProfileRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.authUseCase.UpdateProfile(c.Request().Context(), uid, req.Username, req.Phone)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type mergeCartRequest struct {
	GuestID string `json:"guest_id" validate:"required"`
}

// MergeGuestCart reconciles a pre-login basket into the signed-in user's
// basket.
func (h *AuthHandler) MergeGuestCart(c echo.Context) error {
	var req mergeCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	if err := h.cartUseCase.MergeGuestCart(c.Request().Context(), req.GuestID, uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Guest cart merged successfully",
	})
}
