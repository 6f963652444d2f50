package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"poeconv/internal/adapters/postgres"
	"poeconv/internal/domain"
	"poeconv/internal/platform/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})
	if pgConnStr == "" {
		t.Skip("postgres container is not available")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	_, err = pool.Exec(ctx, `truncate table conversion_exports`)
	require.NoError(t, err)

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)
	pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return pool.Ping(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	require.NoError(t, db.Migrate(ctx, pool))
	// second run must be a no-op
	require.NoError(t, db.Migrate(ctx, pool))

	pgConnStr = dsn
}

func strPtr(s string) *string { return &s }

func sampleExport() domain.StoredExport {
	return domain.StoredExport{
		ID:     uuid.New(),
		League: "Dawn of the Hunt",
		Document: domain.ExportDocument{
			Inputs: []domain.ExportInput{
				{ID: 1, Currency: strPtr("Chaos Orb"), Amount: "10"},
				{ID: 2, Currency: nil, Amount: ""},
			},
			TargetCurrency: strPtr("Divine Orb"),
			ConvertedValue: 0.01,
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestExportRepository_SaveAndGet(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewExportRepository(pool)
	ctx := context.Background()

	in := sampleExport()
	require.NoError(t, repo.Save(ctx, in))

	got, err := repo.GetByID(ctx, in.ID)
	require.NoError(t, err)
	require.Equal(t, in.ID, got.ID)
	require.Equal(t, in.League, got.League)
	require.Equal(t, in.Document, got.Document)
	require.True(t, in.CreatedAt.Equal(got.CreatedAt))
}

func TestExportRepository_GetByID_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewExportRepository(pool)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrExportNotFound)
}

func TestExportRepository_Save_DuplicateID(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewExportRepository(pool)
	ctx := context.Background()

	in := sampleExport()
	require.NoError(t, repo.Save(ctx, in))

	err := repo.Save(ctx, in)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to save export")
}

func TestExportRepository_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewExportRepository(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, sampleExport())
	require.Error(t, err)

	_, err = repo.GetByID(ctx, uuid.New())
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrExportNotFound)
}
