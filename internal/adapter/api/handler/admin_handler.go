package handler

import (
	"github.com/labstack/echo/v4"

	"campussell/internal/usecase"
	"campussell/pkg/response"
	"campussell/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type createAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin moderator"`
}

func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorEmail := c.Get("email").(string)

	admin, err := h.adminUseCase.CreateAdmin(c.Request().Context(), actorEmail, req.Email, req.Role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, admin)
}

func (h *AdminHandler) ListAdmins(c echo.Context) error {
	admins, err := h.adminUseCase.ListAdmins(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, admins)
}

type updateAdminRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin moderator"`
}

func (h *AdminHandler) UpdateAdminRole(c echo.Context) error {
	email := c.Param("email")

	var req updateAdminRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorEmail := c.Get("email").(string)

	admin, err := h.adminUseCase.UpdateAdminRole(c.Request().Context(), actorEmail, email, req.Role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, admin)
}

type suspendAdminRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) SuspendAdmin(c echo.Context) error {
	email := c.Param("email")

	var req suspendAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	actorEmail := c.Get("email").(string)

	admin, err := h.adminUseCase.SuspendAdmin(c.Request().Context(), actorEmail, email, req.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, admin)
}

func (h *AdminHandler) ReactivateAdmin(c echo.Context) error {
	email := c.Param("email")
	actorEmail := c.Get("email").(string)

	admin, err := h.adminUseCase.ReactivateAdmin(c.Request().Context(), actorEmail, email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, admin)
}

func (h *AdminHandler) DeleteAdmin(c echo.Context) error {
	email := c.Param("email")
	actorEmail := c.Get("email").(string)

	if err := h.adminUseCase.DeleteAdmin(c.Request().Context(), actorEmail, email); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Admin deleted successfully"})
}

func (h *AdminHandler) GetAuditLog(c echo.Context) error {
	adminEmail := c.QueryParam("admin_email")
	pagination := utils.GetPaginationParams(c)

	entries, total, err := h.adminUseCase.GetAuditLog(c.Request().Context(), adminEmail, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, entries, total, pagination.Page, pagination.PageSize)
}
