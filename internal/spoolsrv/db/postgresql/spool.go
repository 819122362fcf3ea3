package postgresql

import (
	"context"
	"database/sql"

	"github.com/jackc/pgconn"
	"github.com/rs/zerolog/log"
	"github.com/spooltrack/spooltrack/internal/common/apperrors"
	"github.com/spooltrack/spooltrack/internal/common/uuid"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/dberror"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
)

// CreateSpool inserts a new spool and reads back the server-assigned
// timestamps so the caller sees the stored record.
func (sm *spoolManager) CreateSpool(ctx context.Context, spool *models.Spool) apperrors.Error {
	if spool.ID == uuid.Nil {
		spool.ID = uuid.New()
	}

	query := `
		INSERT INTO spools (id, brand, material, modifier, color_name, color_hex, status, initial_weight, purchase_date, price, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := sm.conn().QueryRowContext(ctx, query,
		spool.ID,
		spool.Brand,
		spool.Material,
		spool.Modifier,
		spool.ColorName,
		spool.ColorHex,
		spool.Status,
		spool.InitialWeight,
		spool.PurchaseDate,
		spool.Price,
		spool.Notes,
	).Scan(&spool.CreatedAt, &spool.UpdatedAt)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			switch {
			case pgErr.Code == "23505":
				return dberror.ErrAlreadyExists.Msg("spool already exists")
			case pgErr.Code == "23514":
				log.Ctx(ctx).Error().Str("constraint", pgErr.ConstraintName).Msg("spool constraint violation")
				return dberror.ErrInvalidInput.Msg("invalid spool data")
			}
		}
		log.Ctx(ctx).Error().Err(err).Str("id", spool.ID.String()).Msg("failed to insert spool")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

func (sm *spoolManager) GetSpool(ctx context.Context, id uuid.UUID) (*models.Spool, apperrors.Error) {
	if id == uuid.Nil {
		return nil, dberror.ErrInvalidInput.Msg("spool id cannot be empty")
	}

	query := `
		SELECT id, brand, material, modifier, color_name, color_hex, status, initial_weight, purchase_date, price, notes, created_at, updated_at
		FROM spools
		WHERE id = $1
	`

	var spool models.Spool
	err := sm.conn().QueryRowContext(ctx, query, id).Scan(
		&spool.ID,
		&spool.Brand,
		&spool.Material,
		&spool.Modifier,
		&spool.ColorName,
		&spool.ColorHex,
		&spool.Status,
		&spool.InitialWeight,
		&spool.PurchaseDate,
		&spool.Price,
		&spool.Notes,
		&spool.CreatedAt,
		&spool.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("spool not found")
		}
		return nil, dberror.ErrDatabase.Err(err)
	}

	return &spool, nil
}

// UpdateSpool replaces all mutable fields of the spool and refreshes
// updated_at. The caller merges partial updates before calling; created_at
// is never touched.
func (sm *spoolManager) UpdateSpool(ctx context.Context, spool *models.Spool) apperrors.Error {
	if spool.ID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("spool id cannot be empty")
	}

	query := `
		UPDATE spools
		SET brand = $2,
		    material = $3,
		    modifier = $4,
		    color_name = $5,
		    color_hex = $6,
		    status = $7,
		    initial_weight = $8,
		    purchase_date = $9,
		    price = $10,
		    notes = $11,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := sm.conn().QueryRowContext(ctx, query,
		spool.ID,
		spool.Brand,
		spool.Material,
		spool.Modifier,
		spool.ColorName,
		spool.ColorHex,
		spool.Status,
		spool.InitialWeight,
		spool.PurchaseDate,
		spool.Price,
		spool.Notes,
	).Scan(&spool.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return dberror.ErrNotFound.Msg("spool not found")
		}
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23514" {
			log.Ctx(ctx).Error().Str("constraint", pgErr.ConstraintName).Msg("spool constraint violation")
			return dberror.ErrInvalidInput.Msg("invalid spool data")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update spool")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

func (sm *spoolManager) DeleteSpool(ctx context.Context, id uuid.UUID) apperrors.Error {
	if id == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("spool id cannot be empty")
	}

	query := `
		DELETE FROM spools
		WHERE id = $1
	`

	result, err := sm.conn().ExecContext(ctx, query, id)
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("spool not found")
	}

	return nil
}

// ListSpools returns the full inventory, newest first. Ties on created_at
// break by id; ids are time ordered, so the overall order is stable.
func (sm *spoolManager) ListSpools(ctx context.Context) ([]*models.Spool, apperrors.Error) {
	query := `
		SELECT id, brand, material, modifier, color_name, color_hex, status, initial_weight, purchase_date, price, notes, created_at, updated_at
		FROM spools
		ORDER BY created_at DESC, id DESC
	`

	rows, err := sm.conn().QueryContext(ctx, query)
	if err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var result []*models.Spool

	for rows.Next() {
		var spool models.Spool
		err := rows.Scan(
			&spool.ID,
			&spool.Brand,
			&spool.Material,
			&spool.Modifier,
			&spool.ColorName,
			&spool.ColorHex,
			&spool.Status,
			&spool.InitialWeight,
			&spool.PurchaseDate,
			&spool.Price,
			&spool.Notes,
			&spool.CreatedAt,
			&spool.UpdatedAt,
		)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan spool row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		result = append(result, &spool)
	}

	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return result, nil
}
