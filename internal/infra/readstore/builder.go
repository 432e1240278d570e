package readstore

import (
	"fmt"
	"strings"

	"venue-booking/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
)

// psql renders PostgreSQL positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const dateLayout = "2006-01-02"

func formatDate(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return pgconv.DateFromPgtype(d).Format(dateLayout)
}

func formatClock(t pgtype.Time) string {
	m := pgconv.MinutesFromPgtime(t)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// spanHours applies the midnight rule: an end at or before the start ends next day.
func spanHours(start, end pgtype.Time) float64 {
	d := pgconv.MinutesFromPgtime(end) - pgconv.MinutesFromPgtime(start)
	if d <= 0 {
		d += 24 * 60
	}
	return float64(d) / 60
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
