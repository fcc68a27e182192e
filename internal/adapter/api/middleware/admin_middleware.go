package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campussell/internal/domain/repository"
)

type AdminMiddleware struct {
	adminRepo repository.AdminRepository
}

func NewAdminMiddleware(adminRepo repository.AdminRepository) *AdminMiddleware {
	return &AdminMiddleware{
		adminRepo: adminRepo,
	}
}

// AdminOnly resolves the caller's email against the admins collection and
// rejects suspended records.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, ok := c.Get("email").(string)
		if !ok || email == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		admin, err := m.adminRepo.GetByEmail(c.Request().Context(), email)
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		if !admin.IsActive {
			return echo.NewHTTPError(http.StatusForbidden, "Admin account is suspended")
		}

		c.Set("adminRole", admin.Role)

		return next(c)
	}
}

// RequirePermission layers a permission check on top of AdminOnly.
func (m *AdminMiddleware) RequirePermission(perm string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := c.Get("email").(string)
			if !ok || email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			admin, err := m.adminRepo.GetByEmail(c.Request().Context(), email)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
			}

			if !admin.IsActive {
				return echo.NewHTTPError(http.StatusForbidden, "Admin account is suspended")
			}

			if !admin.HasPermission(perm) {
				return echo.NewHTTPError(http.StatusForbidden, "Missing permission: "+perm)
			}

			return next(c)
		}
	}
}
