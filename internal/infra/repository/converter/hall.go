package converter

import (
	"venue-booking/internal/domain/hall"
	sqlc "venue-booking/internal/infra/sqlc/generated"
	"venue-booking/internal/pkg/pgconv"
)

func HallToCreateParams(h *hall.Hall) sqlc.CreateHallParams {
	return sqlc.CreateHallParams{
		ID:             h.ID(),
		OwnerID:        h.OwnerID(),
		Name:           h.Name(),
		Description:    h.Description(),
		Location:       h.Location(),
		Capacity:       pgconv.IntToInt32(h.Capacity()),
		PricePerHour:   h.PricePerHour(),
		ApprovalStatus: h.Approval().String(),
		CreatedAt:      pgconv.TimeToPgtype(h.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(h.UpdatedAt()),
	}
}

func HallToUpdateParams(h *hall.Hall) sqlc.UpdateHallParams {
	return sqlc.UpdateHallParams{
		ID:              h.ID(),
		Name:            h.Name(),
		Description:     h.Description(),
		Location:        h.Location(),
		Capacity:        pgconv.IntToInt32(h.Capacity()),
		PricePerHour:    h.PricePerHour(),
		ApprovalStatus:  h.Approval().String(),
		RejectionReason: pgconv.StringPtrToPgtype(h.RejectionReason()),
		UpdatedAt:       pgconv.TimeToPgtype(h.UpdatedAt()),
	}
}

func HallFromRow(row sqlc.Halls) *hall.Hall {
	details := hall.Details{
		Name:         row.Name,
		Description:  row.Description,
		Location:     row.Location,
		Capacity:     int(row.Capacity),
		PricePerHour: row.PricePerHour,
	}
	return hall.ReconstructHall(
		row.ID,
		row.OwnerID,
		details,
		hall.ApprovalStatus(row.ApprovalStatus),
		pgconv.StringPtrFromPgtype(row.RejectionReason),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
