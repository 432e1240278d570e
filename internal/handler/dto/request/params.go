package request

import (
	"time"

	"venue-booking/internal/domain/slot"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidIDParam = errs.Sentinel("invalid id parameter", errs.ErrValidation)

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, ErrInvalidIDParam
	}
	return &id, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := slot.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
