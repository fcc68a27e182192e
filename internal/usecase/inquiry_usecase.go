package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campussell/internal/domain/entity"
	"campussell/internal/domain/repository"
	"campussell/pkg/errors"
	"campussell/pkg/logger"
	"campussell/pkg/utils"
)

type InquiryUseCase struct {
	inquiryRepo repository.InquiryRepository
	productRepo repository.ProductRepository
}

func NewInquiryUseCase(inquiryRepo repository.InquiryRepository, productRepo repository.ProductRepository) *InquiryUseCase {
	return &InquiryUseCase{
		inquiryRepo: inquiryRepo,
		productRepo: productRepo,
	}
}

type CreateInquiryInput struct {
	ProductID string
	Subject   string
	Priority  string
	Content   string
}

func (uc *InquiryUseCase) CreateInquiry(ctx context.Context, buyerID string, input CreateInquiryInput) (*entity.Inquiry, error) {
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if product.SellerID == buyerID {
		return nil, errors.BadRequest("Cannot open an inquiry on your own product", nil)
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}
	if !entity.IsValidPriority(priority) {
		return nil, errors.BadRequest("Invalid priority: "+priority, nil)
	}

	now := time.Now()
	inquiry := &entity.Inquiry{
		ProductID: product.ID,
		BuyerID:   buyerID,
		SellerID:  product.SellerID,
		Subject:   input.Subject,
		Status:    entity.InquiryStatusOpen,
		Priority:  priority,
		Messages: []entity.Message{
			{
				ID:         uuid.New().String(),
				SenderID:   buyerID,
				SenderType: entity.SenderTypeBuyer,
				Content:    input.Content,
				Timestamp:  now,
			},
		},
		LastMessageAt: now,
	}

	if err := uc.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	if err := uc.productRepo.IncrementInquiryCount(ctx, product.ID); err != nil {
		logger.Warn("Failed to increment inquiry count for product %s: %v", product.ID, err)
	}

	return inquiry, nil
}

func (uc *InquiryUseCase) GetInquiry(ctx context.Context, actorID, inquiryID string) (*entity.Inquiry, error) {
	inquiry, err := uc.inquiryRepo.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	if inquiry.BuyerID != actorID && inquiry.SellerID != actorID {
		return nil, errors.Forbidden("You don't have permission to view this inquiry", nil)
	}

	return inquiry, nil
}

func (uc *InquiryUseCase) ListBuyerInquiries(ctx context.Context, buyerID, status string, page, limit int) ([]*entity.Inquiry, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.inquiryRepo.ListByBuyerID(ctx, buyerID, status, pagination.PageSize, pagination.Offset)
}

func (uc *InquiryUseCase) ListSellerInquiries(ctx context.Context, sellerID, status string, page, limit int) ([]*entity.Inquiry, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.inquiryRepo.ListBySellerID(ctx, sellerID, status, pagination.PageSize, pagination.Offset)
}

// SendMessage appends a message on behalf of the registered buyer or
// seller. A seller message flips prior buyer messages to read and moves an
// open inquiry to replied, all in the same store transaction.
func (uc *InquiryUseCase) SendMessage(ctx context.Context, senderID, inquiryID, content string) (*entity.Inquiry, error) {
	inquiry, err := uc.inquiryRepo.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	var senderType string
	switch senderID {
	case inquiry.BuyerID:
		senderType = entity.SenderTypeBuyer
	case inquiry.SellerID:
		senderType = entity.SenderTypeSeller
	default:
		return nil, errors.Forbidden("You are not a participant in this inquiry", nil)
	}

	if inquiry.Status == entity.InquiryStatusClosed {
		return nil, errors.Conflict("Cannot send messages on a closed inquiry")
	}

	app := repository.MessageAppend{
		Message: entity.Message{
			ID:         uuid.New().String(),
			SenderID:   senderID,
			SenderType: senderType,
			Content:    content,
			Timestamp:  time.Now(),
		},
	}

	if senderType == entity.SenderTypeSeller {
		app.MarkBuyerRead = true
		if inquiry.Status == entity.InquiryStatusOpen {
			app.NewStatus = entity.InquiryStatusReplied
			app.SystemMessage = systemMessage("Seller replied; inquiry marked as replied")
		}
	}

	return uc.inquiryRepo.AppendMessage(ctx, inquiryID, app)
}

// UpdateStatus walks the inquiry state machine. Every accepted transition
// appends a system message recording it.
func (uc *InquiryUseCase) UpdateStatus(ctx context.Context, actorID, inquiryID, target string) (*entity.Inquiry, error) {
	inquiry, err := uc.inquiryRepo.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	if inquiry.BuyerID != actorID && inquiry.SellerID != actorID {
		return nil, errors.Forbidden("You are not a participant in this inquiry", nil)
	}

	if !entity.CanTransitionInquiry(inquiry.Status, target) {
		return nil, errors.Conflict("Cannot change inquiry status from " + inquiry.Status + " to " + target)
	}

	app := repository.MessageAppend{
		Message:   *systemMessage("Inquiry status changed from " + inquiry.Status + " to " + target),
		NewStatus: target,
	}

	return uc.inquiryRepo.AppendMessage(ctx, inquiryID, app)
}

func systemMessage(content string) *entity.Message {
	return &entity.Message{
		ID:              uuid.New().String(),
		SenderID:        "system",
		SenderType:      entity.SenderTypeSystem,
		Content:         content,
		Timestamp:       time.Now(),
		IsSystemMessage: true,
	}
}
