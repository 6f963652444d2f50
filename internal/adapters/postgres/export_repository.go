package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"poeconv/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExportRepository struct {
	pool *pgxpool.Pool
}

func (r *ExportRepository) Save(ctx context.Context, export domain.StoredExport) error {
	doc, err := json.Marshal(export.Document)
	if err != nil {
		return fmt.Errorf("failed to marshal export %s: %w", export.ID, err)
	}

	const q = `
		insert into conversion_exports (id, league, document, created_at)
		values ($1, $2, $3, $4);
	`
	if _, err = r.pool.Exec(ctx, q, export.ID, export.League, doc, export.CreatedAt); err != nil {
		return fmt.Errorf("failed to save export %s: %w", export.ID, err)
	}
	return nil
}

func (r *ExportRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.StoredExport, error) {
	const q = `
		select league, document, created_at
		from conversion_exports
		where id = $1;
	`

	export := domain.StoredExport{ID: id}
	var doc []byte
	err := r.pool.QueryRow(ctx, q, id).Scan(&export.League, &doc, &export.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.StoredExport{}, domain.ErrExportNotFound
		}
		return domain.StoredExport{}, fmt.Errorf("failed to get export %s: %w", id, err)
	}

	if err = json.Unmarshal(doc, &export.Document); err != nil {
		return domain.StoredExport{}, fmt.Errorf("failed to decode export %s: %w", id, err)
	}
	return export, nil
}

func NewExportRepository(pool *pgxpool.Pool) *ExportRepository {
	return &ExportRepository{pool: pool}
}
