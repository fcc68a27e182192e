package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
)

type CompanyMiddleware struct {
	companyRepo repository.DeliveryCompanyRepository
}

func NewCompanyMiddleware(companyRepo repository.DeliveryCompanyRepository) *CompanyMiddleware {
	return &CompanyMiddleware{
		companyRepo: companyRepo,
	}
}

// CompanyOnly resolves the caller's email against the delivery-company
// directory and rejects callers that don't act for an active company. The
// resolved company id is put into the request context; handlers never
// accept it from the request.
func (m *CompanyMiddleware) CompanyOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, ok := c.Get("email").(string)
		if !ok || email == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		company, err := m.companyRepo.GetByContactEmail(c.Request().Context(), email)
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "Delivery company account required")
		}

		if company.Status != entity.CompanyStatusActive {
			return echo.NewHTTPError(http.StatusForbidden, "Delivery company is not active")
		}

		c.Set("companyId", company.ID)

		return next(c)
	}
}
