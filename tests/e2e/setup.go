//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"venue-booking/cmd/bootstrap"
	"venue-booking/cmd/bootstrap/components"
	"venue-booking/internal/infra/db"
	"venue-booking/internal/pkg/config"
	"venue-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = "5432/tcp"
)

var migrationFiles = []string{
	"migrations/001_initial_schema.sql",
}

var (
	containerOnce sync.Once
	container     testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, c.Host, c.Port.Port(), dbName)
}

// SharedSuite gives every e2e suite its own database inside one shared
// Postgres container, plus a fully wired router.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	info := startPostgres(t)
	pool, dbCfg := createDatabase(t, info)

	router, cfg, app := startApp(t, pool, dbCfg)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop e2e app", "error", err.Error())
		}
	})

	s.DB = pool
	s.Router = router
	s.Config = cfg
}

// SetupSubTest truncates every table and reseeds reference data.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}

func startPostgres(t *testing.T) ContainerInfo {
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var err error
		container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{pgPort},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				// Durability is irrelevant for throwaway data.
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
					"-c", "log_statement=none",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return ContainerInfo{Host: host, Port: port}.dsn("postgres")
				}).WithStartupTimeout(60 * time.Second),
				Name:   "venue-booking-postgres-e2e",
				Labels: map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
		require.NoError(t, err, "failed to start postgres container")
	})
	require.NotNil(t, container, "postgres container is not running")

	ctx := context.Background()
	port, err := container.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)
	return ContainerInfo{Host: host, Port: port}
}

func createDatabase(t *testing.T, info ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	dbName := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := info.dsn("postgres")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to connect as admin")
	defer admin.Close()

	// CREATE DATABASE fails while template1 is busy with a parallel suite.
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(min(time.Duration(attempt)*500*time.Millisecond, 3*time.Second))
		}
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+dbName); err == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt+1, "error", err.Error())
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			slog.Warn("failed to connect for database cleanup", "database", dbName, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbCfg := config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}

	pool, _, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, applyMigrations(ctx, pool), "failed to apply migrations")
	require.NoError(t, dbtest.SeedReferenceData(pool), "failed to seed reference data")

	return pool, dbCfg
}

// applyMigrations runs the schema files directly; the atlas CLI is not
// available inside CI runners.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, file := range migrationFiles {
		content, err := readFromRepoRoot(file)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("execute migration %s: %w", file, err)
		}
	}
	return nil
}

// go test runs with the package directory as cwd, so walk upwards.
func readFromRepoRoot(rel string) ([]byte, error) {
	path := rel
	for range 4 {
		content, err := os.ReadFile(path)
		if err == nil {
			return content, nil
		}
		path = filepath.Join("..", path)
	}
	return nil, fmt.Errorf("migration file %s not found", rel)
}

func startApp(t *testing.T, pool *pgxpool.Pool, dbCfg config.DBConfig) (*gin.Engine, config.Config, *fx.App) {
	var (
		router *gin.Engine
		cfg    config.Config
	)

	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config {
				c := config.NewTestConfig()
				c.DB = dbCfg
				return c
			},
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.ObservabilityModule,
		bootstrap.EventsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.WorkerModule,
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "router was not populated")

	return router, cfg, app
}
