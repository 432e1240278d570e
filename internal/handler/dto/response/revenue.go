package response

import (
	"time"

	"venue-booking/internal/domain/revenue"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RevenueRecordResponse struct {
	ID                    uuid.UUID `json:"id"`
	BookingID             uuid.UUID `json:"booking_id"`
	HallID                uuid.UUID `json:"hall_id"`
	HallName              string    `json:"hall_name"`
	OwnerID               uuid.UUID `json:"owner_id"`
	CustomerID            uuid.UUID `json:"customer_id"`
	CustomerEmail         string    `json:"customer_email"`
	Date                  string    `json:"date"`
	StartTime             string    `json:"start_time"`
	EndTime               string    `json:"end_time"`
	TotalAmount           int64     `json:"total_amount"`
	PlatformFeeAmount     int64     `json:"platform_fee_amount"`
	OwnerCommissionAmount int64     `json:"owner_commission_amount"`
	CompletedAt           time.Time `json:"completed_at"`
	TransactionRef        string    `json:"transaction_ref"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
}

func FromRevenueView(v *queries.RevenueRecordView) *RevenueRecordResponse {
	var res RevenueRecordResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromRevenueRecord(r *revenue.Record) *RevenueRecordResponse {
	snap := r.Snapshot()
	return &RevenueRecordResponse{
		ID:                    r.ID(),
		BookingID:             snap.BookingID,
		HallID:                snap.HallID,
		HallName:              snap.HallName,
		OwnerID:               snap.OwnerID,
		CustomerID:            snap.CustomerID,
		CustomerEmail:         snap.CustomerEmail,
		Date:                  snap.Interval.Date().Format(time.DateOnly),
		StartTime:             snap.Interval.Start().String(),
		EndTime:               snap.Interval.End().String(),
		TotalAmount:           snap.Amounts.Total,
		PlatformFeeAmount:     snap.Amounts.PlatformFee,
		OwnerCommissionAmount: snap.Amounts.OwnerCommission,
		CompletedAt:           snap.CompletedAt,
		TransactionRef:        r.TransactionRef(),
		Status:                r.Status().String(),
		CreatedAt:             r.CreatedAt(),
	}
}

type RevenueListResponse struct {
	Items      []*RevenueRecordResponse `json:"items"`
	NextCursor string                   `json:"next_cursor,omitempty"`
}

func FromRevenueList(items []*queries.RevenueRecordView, next *queries.Cursor) *RevenueListResponse {
	res := &RevenueListResponse{Items: make([]*RevenueRecordResponse, len(items))}
	for i, v := range items {
		res.Items[i] = FromRevenueView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type RevenueSummaryResponse struct {
	Period                string    `json:"period"`
	From                  time.Time `json:"from"`
	To                    time.Time `json:"to"`
	RecordCount           int64     `json:"record_count"`
	RefundedCount         int64     `json:"refunded_count"`
	TotalAmount           int64     `json:"total_amount"`
	PlatformFeeAmount     int64     `json:"platform_fee_amount"`
	OwnerCommissionAmount int64     `json:"owner_commission_amount"`
}

func FromRevenueSummary(s *queries.RevenueSummary) *RevenueSummaryResponse {
	return &RevenueSummaryResponse{
		Period:                s.Period,
		From:                  s.From,
		To:                    s.To,
		RecordCount:           s.RecordCount,
		RefundedCount:         s.RefundedCount,
		TotalAmount:           s.TotalAmount,
		PlatformFeeAmount:     s.PlatformFeeAmount,
		OwnerCommissionAmount: s.OwnerCommissionAmount,
	}
}
