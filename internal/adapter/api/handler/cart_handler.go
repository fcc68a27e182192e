package handler

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/usecase"
	"campussell/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	item, err := h.cartUseCase.AddToCart(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID := c.Get("uid").(string)

	summary, err := h.cartUseCase.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	itemID := c.Param("id")

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	if err := h.cartUseCase.UpdateQuantity(c.Request().Context(), userID, itemID, req.Quantity); err != nil {
		return response.Error(c, err)
	}

	summary, err := h.cartUseCase.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID := c.Param("id")
	userID := c.Get("uid").(string)

	if err := h.cartUseCase.RemoveItem(c.Request().Context(), userID, itemID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Item removed from cart",
	})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.cartUseCase.ClearCart(c.Request().Context(), userID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Cart cleared",
	})
}
