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

// CreateColor inserts a catalog color. The sort order is scoped to the
// (brand, material, modifier) group: one past the group's current maximum,
// or 0 for the group's first color.
func (cm *catalogManager) CreateColor(ctx context.Context, color *models.CatalogColor) apperrors.Error {
	if color.ID == uuid.Nil {
		color.ID = uuid.New()
	}

	query := `
		INSERT INTO catalog_colors (id, brand_id, material_id, modifier_id, color_name, color_hex, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6,
			COALESCE((SELECT MAX(sort_order) + 1 FROM catalog_colors
				WHERE brand_id = $2 AND material_id = $3 AND modifier_id = $4), 0))
		RETURNING sort_order
	`

	err := cm.conn().QueryRowContext(ctx, query,
		color.ID,
		color.BrandID,
		color.MaterialID,
		color.ModifierID,
		color.ColorName,
		color.ColorHex,
	).Scan(&color.SortOrder)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			switch {
			case pgErr.Code == "23505":
				return dberror.ErrAlreadyExists.Msg("catalog color already exists")
			case pgErr.Code == "23503":
				return dberror.ErrForeignKey.Msg("brand, material, or modifier does not exist")
			case pgErr.Code == "23514" && pgErr.ConstraintName == "catalog_colors_color_hex_check":
				log.Ctx(ctx).Error().Str("hex", color.ColorHex).Msg("invalid color hex format")
				return dberror.ErrInvalidInput.Msg("invalid color hex format")
			}
		}
		log.Ctx(ctx).Error().Err(err).Str("name", color.ColorName).Msg("failed to insert catalog color")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

func (cm *catalogManager) GetColor(ctx context.Context, id uuid.UUID) (*models.CatalogColor, apperrors.Error) {
	if id == uuid.Nil {
		return nil, dberror.ErrInvalidInput.Msg("catalog color id cannot be empty")
	}

	query := `
		SELECT id, brand_id, material_id, modifier_id, color_name, color_hex, sort_order
		FROM catalog_colors
		WHERE id = $1
	`

	var color models.CatalogColor
	err := cm.conn().QueryRowContext(ctx, query, id).
		Scan(&color.ID, &color.BrandID, &color.MaterialID, &color.ModifierID, &color.ColorName, &color.ColorHex, &color.SortOrder)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("catalog color not found")
		}
		return nil, dberror.ErrDatabase.Err(err)
	}

	return &color, nil
}

// UpdateColor updates the color's name and hex. The grouping keys and sort
// order are immutable; moving a color to another group means deleting and
// re-adding it.
func (cm *catalogManager) UpdateColor(ctx context.Context, color *models.CatalogColor) apperrors.Error {
	if color.ID == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("catalog color id cannot be empty")
	}

	query := `
		UPDATE catalog_colors
		SET color_name = $2,
		    color_hex = $3
		WHERE id = $1
	`

	result, err := cm.conn().ExecContext(ctx, query, color.ID, color.ColorName, color.ColorHex)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23514" && pgErr.ConstraintName == "catalog_colors_color_hex_check" {
				return dberror.ErrInvalidInput.Msg("invalid color hex format")
			}
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update catalog color")
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("catalog color not found")
	}

	return nil
}

func (cm *catalogManager) DeleteColor(ctx context.Context, id uuid.UUID) apperrors.Error {
	if id == uuid.Nil {
		return dberror.ErrInvalidInput.Msg("catalog color id cannot be empty")
	}

	query := `
		DELETE FROM catalog_colors
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
		return dberror.ErrNotFound.Msg("catalog color not found")
	}

	return nil
}

// ListColors returns the curated palette for one (brand, material, modifier)
// group, ordered by sort order. An empty result is not an error; it means no
// preset palette exists for the combination.
func (cm *catalogManager) ListColors(ctx context.Context, brandID, materialID, modifierID string) ([]*models.CatalogColor, apperrors.Error) {
	if brandID == "" || materialID == "" || modifierID == "" {
		return nil, dberror.ErrInvalidInput.Msg("brand, material, and modifier ids are required")
	}

	query := `
		SELECT id, brand_id, material_id, modifier_id, color_name, color_hex, sort_order
		FROM catalog_colors
		WHERE brand_id = $1 AND material_id = $2 AND modifier_id = $3
		ORDER BY sort_order ASC, color_name ASC
	`

	rows, err := cm.conn().QueryContext(ctx, query, brandID, materialID, modifierID)
	if err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var result []*models.CatalogColor

	for rows.Next() {
		var color models.CatalogColor
		err := rows.Scan(&color.ID, &color.BrandID, &color.MaterialID, &color.ModifierID, &color.ColorName, &color.ColorHex, &color.SortOrder)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan catalog color row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		result = append(result, &color)
	}

	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return result, nil
}

// ListAvailableModifiers returns the distinct modifier ids that have at
// least one catalog color for the given brand and material. An empty result
// means the combination has no curated catalog.
func (cm *catalogManager) ListAvailableModifiers(ctx context.Context, brandID, materialID string) ([]string, apperrors.Error) {
	if brandID == "" || materialID == "" {
		return nil, dberror.ErrInvalidInput.Msg("brand and material ids are required")
	}

	query := `
		SELECT DISTINCT modifier_id
		FROM catalog_colors
		WHERE brand_id = $1 AND material_id = $2
		ORDER BY modifier_id ASC
	`

	rows, err := cm.conn().QueryContext(ctx, query, brandID, materialID)
	if err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var result []string

	for rows.Next() {
		var modifierID string
		if err := rows.Scan(&modifierID); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan modifier id row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		result = append(result, modifierID)
	}

	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return result, nil
}
