//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// password for every fixture account: "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const DefaultAdminEmail = "admin@example.com"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, full_name, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role, strings.Split(email, "@")[0])
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestHall inserts an approved hall owned by ownerID.
func CreateTestHall(t *testing.T, db DBLike, ownerID uuid.UUID, name string, pricePerHour int64) uuid.UUID {
	t.Helper()

	hallID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO halls (id, owner_id, name, description, location, capacity, price_per_hour, approval_status) VALUES ($1, $2, $3, '', 'Berlin', 100, $4, 'approved')",
		hallID, ownerID, name, pricePerHour)
	require.NoError(t, err)

	return hallID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (email, password_hash, role, full_name) VALUES
		    ($1, $2, 'admin', 'Platform Admin')
		ON CONFLICT (email) DO NOTHING;
	`, DefaultAdminEmail, testPasswordHash)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
