package postgresql

import (
	"context"
	"database/sql"

	"github.com/jackc/pgconn"
	"github.com/rs/zerolog/log"
	"github.com/spooltrack/spooltrack/internal/common/apperrors"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/dberror"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
)

// CreateBrand inserts a new brand. The sort order is assigned in the insert
// itself: one past the current maximum, or 0 for the first row. Concurrent
// inserts may race on the max and produce duplicate sort orders; reads break
// ties by name, so the race is tolerated rather than serialized.
func (cm *catalogManager) CreateBrand(ctx context.Context, brand *models.Brand) apperrors.Error {
	query := `
		INSERT INTO brands (id, name, sort_order)
		VALUES ($1, $2, COALESCE((SELECT MAX(sort_order) + 1 FROM brands), 0))
		RETURNING sort_order
	`

	err := cm.conn().QueryRowContext(ctx, query, brand.ID, brand.Name).Scan(&brand.SortOrder)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			switch {
			case pgErr.Code == "23505":
				return dberror.ErrAlreadyExists.Msg("brand already exists")
			case pgErr.Code == "23514" && pgErr.ConstraintName == "brands_id_check":
				log.Ctx(ctx).Error().Str("id", brand.ID).Msg("invalid brand id format")
				return dberror.ErrInvalidInput.Msg("invalid brand id format")
			}
		}
		log.Ctx(ctx).Error().Err(err).Str("id", brand.ID).Msg("failed to insert brand")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

func (cm *catalogManager) GetBrand(ctx context.Context, id string) (*models.Brand, apperrors.Error) {
	if id == "" {
		return nil, dberror.ErrInvalidInput.Msg("brand id cannot be empty")
	}

	query := `
		SELECT id, name, sort_order
		FROM brands
		WHERE id = $1
	`

	var brand models.Brand
	err := cm.conn().QueryRowContext(ctx, query, id).
		Scan(&brand.ID, &brand.Name, &brand.SortOrder)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("brand not found")
		}
		return nil, dberror.ErrDatabase.Err(err)
	}

	return &brand, nil
}

// UpdateBrand updates the brand's name. The id and sort order are immutable.
func (cm *catalogManager) UpdateBrand(ctx context.Context, brand *models.Brand) apperrors.Error {
	if brand.ID == "" {
		return dberror.ErrInvalidInput.Msg("brand id cannot be empty")
	}

	query := `
		UPDATE brands
		SET name = $2
		WHERE id = $1
	`

	result, err := cm.conn().ExecContext(ctx, query, brand.ID, brand.Name)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return dberror.ErrAlreadyExists.Msg("brand name already in use")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update brand")
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("brand not found")
	}

	return nil
}

// DeleteBrand removes the brand. Catalog colors referencing it are removed
// by the cascading foreign key.
func (cm *catalogManager) DeleteBrand(ctx context.Context, id string) apperrors.Error {
	if id == "" {
		return dberror.ErrInvalidInput.Msg("brand id cannot be empty")
	}

	query := `
		DELETE FROM brands
		WHERE id = $1
	`

	result, err := cm.conn().ExecContext(ctx, query, id)
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("brand not found")
	}

	return nil
}

func (cm *catalogManager) ListBrands(ctx context.Context) ([]*models.Brand, apperrors.Error) {
	query := `
		SELECT id, name, sort_order
		FROM brands
		ORDER BY sort_order ASC, name ASC
	`

	rows, err := cm.conn().QueryContext(ctx, query)
	if err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var result []*models.Brand

	for rows.Next() {
		var brand models.Brand
		err := rows.Scan(&brand.ID, &brand.Name, &brand.SortOrder)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan brand row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		result = append(result, &brand)
	}

	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return result, nil
}
