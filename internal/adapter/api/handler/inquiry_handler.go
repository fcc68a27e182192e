package handler

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/usecase"
	"campussell/pkg/response"
	"campussell/pkg/utils"
)

type InquiryHandler struct {
	inquiryUseCase *usecase.InquiryUseCase
}

func NewInquiryHandler(inquiryUseCase *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{
		inquiryUseCase: inquiryUseCase,
	}
}

type createInquiryRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Priority  string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Content   string `json:"content" validate:"required"`
}

func (h *InquiryHandler) CreateInquiry(c echo.Context) error {
	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)

	inquiry, err := h.inquiryUseCase.CreateInquiry(c.Request().Context(), buyerID, usecase.CreateInquiryInput{
		ProductID: req.ProductID,
		Subject:   req.Subject,
		Priority:  req.Priority,
		Content:   req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, inquiry)
}

func (h *InquiryHandler) GetInquiry(c echo.Context) error {
	id := c.Param("id")
	actorID := c.Get("uid").(string)

	inquiry, err := h.inquiryUseCase.GetInquiry(c.Request().Context(), actorID, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiry)
}

func (h *InquiryHandler) ListBuyerInquiries(c echo.Context) error {
	buyerID := c.Get("uid").(string)
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	inquiries, total, err := h.inquiryUseCase.ListBuyerInquiries(c.Request().Context(), buyerID, status, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, inquiries, total, pagination.Page, pagination.PageSize)
}

func (h *InquiryHandler) ListSellerInquiries(c echo.Context) error {
	sellerID := c.Get("uid").(string)
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	inquiries, total, err := h.inquiryUseCase.ListSellerInquiries(c.Request().Context(), sellerID, status, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, inquiries, total, pagination.Page, pagination.PageSize)
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *InquiryHandler) SendMessage(c echo.Context) error {
	id := c.Param("id")

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	senderID := c.Get("uid").(string)

	inquiry, err := h.inquiryUseCase.SendMessage(c.Request().Context(), senderID, id, req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiry)
}

type updateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open replied completed closed"`
}

func (h *InquiryHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")

	var req updateInquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorID := c.Get("uid").(string)

	inquiry, err := h.inquiryUseCase.UpdateStatus(c.Request().Context(), actorID, id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiry)
}
