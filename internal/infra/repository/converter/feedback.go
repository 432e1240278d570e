package converter

import (
	"venue-booking/internal/domain/feedback"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
)

func FeedbackToUpsertParams(f *feedback.Feedback) sqlc.UpsertFeedbackParams {
	return sqlc.UpsertFeedbackParams{
		ID:         f.ID(),
		BookingID:  f.BookingID(),
		HallID:     f.HallID(),
		CustomerID: f.CustomerID(),
		Rating:     pgconv.IntToInt16(f.Rating().Value()),
		Comment:    f.Comment().String(),
		CreatedAt:  pgconv.TimeToPgtype(f.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(f.UpdatedAt()),
	}
}
