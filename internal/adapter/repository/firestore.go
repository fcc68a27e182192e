package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsNotFound reports whether a Firestore error means the document is absent.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
