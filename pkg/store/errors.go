package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	apperrors "flamesblue/pkg/errors"
)

// AppError maps a store error to the error the API returns. An outage is a
// 503; everything else is a 500 whose detail stays generic.
func AppError(err error, action string) error {
	if err == nil {
		return nil
	}
	if apperrors.IsAppError(err) {
		return err
	}
	if errors.Is(err, ErrNotConnected) {
		return apperrors.Unavailable("Document store", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(err, apperrors.CodeTimeout, "Document store timed out", http.StatusServiceUnavailable)
	}
	return apperrors.Internal("Internal server error", fmt.Errorf("%s: %w", action, err))
}
