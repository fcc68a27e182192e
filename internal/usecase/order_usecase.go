package usecase

import (
	"context"
	"time"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
	"campussell/pkg/errors"
	"campussell/pkg/logger"
	"campussell/pkg/utils"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	metricsRepo repository.MetricsRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository, metricsRepo repository.MetricsRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		metricsRepo: metricsRepo,
	}
}

// GetOrder is visible to the buyer and to the assigned delivery company.
func (uc *OrderUseCase) GetOrder(ctx context.Context, actorID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != actorID && order.DeliveryInfo.CompanyID != actorID {
		return nil, errors.Forbidden("You don't have permission to view this order", nil)
	}

	return order, nil
}

func (uc *OrderUseCase) ListUserOrders(ctx context.Context, userID, status string, page, limit int) ([]*entity.Order, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.orderRepo.ListByUserID(ctx, userID, status, pagination.PageSize, pagination.Offset)
}

func (uc *OrderUseCase) ListCompanyOrders(ctx context.Context, companyID, status string, page, limit int) ([]*entity.Order, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.orderRepo.ListByCompanyID(ctx, companyID, status, pagination.PageSize, pagination.Offset)
}

// CancelOrder is a buyer action and only valid while the order is still
// pending. Cancellation is a status, never a deletion.
func (uc *OrderUseCase) CancelOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, errors.Forbidden("Only the buyer can cancel this order", nil)
	}

	return uc.transition(ctx, order, entity.OrderStatusCancelled)
}

// AdvanceOrderAsCompany moves an order forward (pending -> in_progress ->
// delivered) for the delivery company it is assigned to. The company id
// comes from the authenticated caller, never from the request.
func (uc *OrderUseCase) AdvanceOrderAsCompany(ctx context.Context, companyID, orderID, target string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.DeliveryInfo.CompanyID != companyID {
		return nil, errors.Forbidden("Order is not assigned to this delivery company", nil)
	}

	return uc.advance(ctx, order, target)
}

// AdvanceOrderAsAdmin moves any order forward regardless of assignment.
func (uc *OrderUseCase) AdvanceOrderAsAdmin(ctx context.Context, orderID, target string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return uc.advance(ctx, order, target)
}

func (uc *OrderUseCase) advance(ctx context.Context, order *entity.Order, target string) (*entity.Order, error) {
	if target == entity.OrderStatusCancelled {
		return nil, errors.Forbidden("Only the buyer can cancel an order", nil)
	}

	return uc.transition(ctx, order, target)
}

func (uc *OrderUseCase) transition(ctx context.Context, order *entity.Order, target string) (*entity.Order, error) {
	if !entity.CanTransitionOrder(order.Status, target) {
		return nil, errors.Conflict("Cannot change order status from " + order.Status + " to " + target)
	}

	now := time.Now()
	order.Status = target

	switch target {
	case entity.OrderStatusDelivered:
		order.DeliveredAt = &now
	case entity.OrderStatusCancelled:
		order.CancelledAt = &now
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	// Company metrics are best-effort; a metrics failure never rolls back
	// the transition.
	switch target {
	case entity.OrderStatusDelivered:
		if err := uc.metricsRepo.IncrementDelivered(ctx, order.DeliveryInfo.CompanyID); err != nil {
			logger.LogOrderError(order.ID, "increment_delivered", err)
		}
	case entity.OrderStatusCancelled:
		if err := uc.metricsRepo.IncrementCancelled(ctx, order.DeliveryInfo.CompanyID); err != nil {
			logger.LogOrderError(order.ID, "increment_cancelled", err)
		}
	}

	return order, nil
}
