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

func (cm *catalogManager) CreateMaterial(ctx context.Context, material *models.Material) apperrors.Error {
	// Treat empty string as NULL
	description := sql.NullString{String: material.Description, Valid: material.Description != ""}

	query := `
		INSERT INTO materials (id, name, description, sort_order)
		VALUES ($1, $2, $3, COALESCE((SELECT MAX(sort_order) + 1 FROM materials), 0))
		RETURNING sort_order
	`

	err := cm.conn().QueryRowContext(ctx, query, material.ID, material.Name, description).Scan(&material.SortOrder)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			switch {
			case pgErr.Code == "23505":
				return dberror.ErrAlreadyExists.Msg("material already exists")
			case pgErr.Code == "23514" && pgErr.ConstraintName == "materials_id_check":
				log.Ctx(ctx).Error().Str("id", material.ID).Msg("invalid material id format")
				return dberror.ErrInvalidInput.Msg("invalid material id format")
			}
		}
		log.Ctx(ctx).Error().Err(err).Str("id", material.ID).Msg("failed to insert material")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

func (cm *catalogManager) GetMaterial(ctx context.Context, id string) (*models.Material, apperrors.Error) {
	if id == "" {
		return nil, dberror.ErrInvalidInput.Msg("material id cannot be empty")
	}

	query := `
		SELECT id, name, COALESCE(description, ''), sort_order
		FROM materials
		WHERE id = $1
	`

	var material models.Material
	err := cm.conn().QueryRowContext(ctx, query, id).
		Scan(&material.ID, &material.Name, &material.Description, &material.SortOrder)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, dberror.ErrNotFound.Msg("material not found")
		}
		return nil, dberror.ErrDatabase.Err(err)
	}

	return &material, nil
}

// UpdateMaterial updates the material's name and description. The id and
// sort order are immutable.
func (cm *catalogManager) UpdateMaterial(ctx context.Context, material *models.Material) apperrors.Error {
	if material.ID == "" {
		return dberror.ErrInvalidInput.Msg("material id cannot be empty")
	}

	description := sql.NullString{String: material.Description, Valid: material.Description != ""}

	query := `
		UPDATE materials
		SET name = $2,
		    description = $3
		WHERE id = $1
	`

	result, err := cm.conn().ExecContext(ctx, query, material.ID, material.Name, description)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to update material")
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	if rowsAffected == 0 {
		return dberror.ErrNotFound.Msg("material not found")
	}

	return nil
}

// DeleteMaterial removes the material. Catalog colors referencing it are
// removed by the cascading foreign key.
func (cm *catalogManager) DeleteMaterial(ctx context.Context, id string) apperrors.Error {
	if id == "" {
		return dberror.ErrInvalidInput.Msg("material id cannot be empty")
	}

	query := `
		DELETE FROM materials
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
		return dberror.ErrNotFound.Msg("material not found")
	}

	return nil
}

func (cm *catalogManager) ListMaterials(ctx context.Context) ([]*models.Material, apperrors.Error) {
	query := `
		SELECT id, name, COALESCE(description, ''), sort_order
		FROM materials
		ORDER BY sort_order ASC, name ASC
	`

	rows, err := cm.conn().QueryContext(ctx, query)
	if err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var result []*models.Material

	for rows.Next() {
		var material models.Material
		err := rows.Scan(&material.ID, &material.Name, &material.Description, &material.SortOrder)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan material row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		result = append(result, &material)
	}

	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	return result, nil
}
