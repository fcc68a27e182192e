package repository

import (
	"context"

	"campussell/internal/domain/entity"
)

// MessageAppend bundles one atomic inquiry mutation: the appended message,
// the resulting status, and whether prior buyer messages flip to read.
type MessageAppend struct {
	Message       entity.Message
	SystemMessage *entity.Message
	NewStatus     string
	MarkBuyerRead bool
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	GetByID(ctx context.Context, id string) (*entity.Inquiry, error)
	Update(ctx context.Context, inquiry *entity.Inquiry) error
	ListByBuyerID(ctx context.Context, buyerID string, status string, limit, offset int) ([]*entity.Inquiry, int64, error)
	ListBySellerID(ctx context.Context, sellerID string, status string, limit, offset int) ([]*entity.Inquiry, int64, error)

	// AppendMessage applies the whole append in a single store
	// transaction so the message, read flags and status can never
	// diverge.
	AppendMessage(ctx context.Context, inquiryID string, append MessageAppend) (*entity.Inquiry, error)

	// CountOpenByProductIDs reports open/replied inquiries per product,
	// for the bulk-delete advisory check.
	CountOpenByProductIDs(ctx context.Context, productIDs []string) (map[string]int, error)
}
