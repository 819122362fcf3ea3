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

func (cm *catalogManager) CreateModifier(ctx context.Context, modifier *models.Modifier) apperrors.Error {
	query := `
		INSERT INTO modifiers (id, name, suffix, sort_order)
		VALUES ($1, $2, $3, COALESCE((SELECT MAX(sort_order) + 1 FROM modifiers), 0))
		RETURNING sort_order
	`

	err := cm.conn().QueryRowContext(ctx, query, modifier.ID, modifier.Name, modifier.Suffix).Scan(&modifier.SortOrder)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			switch {
			case pgErr.Code == "23505":
				return dberror.ErrAlreadyExists.Msg("modifier already exists")
			case pgErr.Code == "23514" && pgErr.ConstraintName == "modifiers_id_check":
				log.Ctx(ctx).Error().Str("id", modifier.ID).Msg("invalid modifier id format")
				return dberror.ErrInvalidInput.Msg("invalid modifier id format")
			}
		}
		log.Ctx(ctx).Error().Err(err).Str("id", modifier.ID).Msg("failed to insert modifier")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

func (cm *catalogManager) GetModifier(ctx context.Context, id string) (*models.Modifier, apperrors.Error) {
	if id == "" {
		return nil, dberror.ErrInvalidInput.Msg("modifier id cannot be empty")
	}

	query := `
		SELECT id, name, suffix, sort_order
		FROM modifiers
		WHERE id = $1
	`

	var modifier models.Modifier
	err := cm.conn().QueryRowContext(ctx, query, id).
		Scan(&modifier.ID, &modifier.Name, &modifier.Suffix, &modifier.SortOrder)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("modifier not found")
		}
		return nil, dberror.ErrDatabase.Err(err)
	}

	return &modifier, nil
}

// UpdateModifier updates the modifier's name and suffix. The id and sort
// order are immutable.
func (cm *catalogManager) UpdateModifier(ctx context.Context, modifier *models.Modifier) apperrors.Error {
	if modifier.ID == "" {
		return dberror.ErrInvalidInput.Msg("modifier id cannot be empty")
	}

	query := `
		UPDATE modifiers
		SET name = $2,
		    suffix = $3
		WHERE id = $1
	`

	result, err := cm.conn().ExecContext(ctx, query, modifier.ID, modifier.Name, modifier.Suffix)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to update modifier")
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("modifier not found")
	}

	return nil
}

// DeleteModifier removes the modifier. Catalog colors referencing it are
// removed by the cascading foreign key.
func (cm *catalogManager) DeleteModifier(ctx context.Context, id string) apperrors.Error {
	if id == "" {
		return dberror.ErrInvalidInput.Msg("modifier id cannot be empty")
	}

	query := `
		DELETE FROM modifiers
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
		return dberror.ErrNotFound.Msg("modifier not found")
	}

	return nil
}

func (cm *catalogManager) ListModifiers(ctx context.Context) ([]*models.Modifier, apperrors.Error) {
	query := `
		SELECT id, name, suffix, sort_order
		FROM modifiers
		ORDER BY sort_order ASC, name ASC
	`

	rows, err := cm.conn().QueryContext(ctx, query)
	if err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var result []*models.Modifier

	for rows.Next() {
		var modifier models.Modifier
		err := rows.Scan(&modifier.ID, &modifier.Name, &modifier.Suffix, &modifier.SortOrder)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan modifier row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		result = append(result, &modifier)
	}

	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return result, nil
}
