// Package db provides database interfaces and implementations for the inventory service.
// It defines three main interfaces:
// - CatalogManager: Handles the curated catalog of brands, materials, modifiers, and colors
// - SpoolManager: Manages the physical spool inventory
// - ConnectionManager: Manages database connections
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spooltrack/spooltrack/internal/common/apperrors"
	"github.com/spooltrack/spooltrack/internal/common/uuid"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/dbmanager"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/postgresql"
)

// CatalogManager handles all catalog operations: the brands, materials,
// modifiers, and per-group color entries an operator curates ahead of time.
// All operations require a valid context and may return apperrors.Error for
// various failure cases.
type CatalogManager interface {
	// Brand
	CreateBrand(ctx context.Context, brand *models.Brand) apperrors.Error
	GetBrand(ctx context.Context, id string) (*models.Brand, apperrors.Error)
	UpdateBrand(ctx context.Context, brand *models.Brand) apperrors.Error
	DeleteBrand(ctx context.Context, id string) apperrors.Error
	ListBrands(ctx context.Context) ([]*models.Brand, apperrors.Error)

	// Material
	CreateMaterial(ctx context.Context, material *models.Material) apperrors.Error
	GetMaterial(ctx context.Context, id string) (*models.Material, apperrors.Error)
	UpdateMaterial(ctx context.Context, material *models.Material) apperrors.Error
	DeleteMaterial(ctx context.Context, id string) apperrors.Error
	ListMaterials(ctx context.Context) ([]*models.Material, apperrors.Error)

	// Modifier
	CreateModifier(ctx context.Context, modifier *models.Modifier) apperrors.Error
	GetModifier(ctx context.Context, id string) (*models.Modifier, apperrors.Error)
	UpdateModifier(ctx context.Context, modifier *models.Modifier) apperrors.Error
	DeleteModifier(ctx context.Context, id string) apperrors.Error
	ListModifiers(ctx context.Context) ([]*models.Modifier, apperrors.Error)

	// CatalogColor
	CreateColor(ctx context.Context, color *models.CatalogColor) apperrors.Error
	GetColor(ctx context.Context, id uuid.UUID) (*models.CatalogColor, apperrors.Error)
	UpdateColor(ctx context.Context, color *models.CatalogColor) apperrors.Error
	DeleteColor(ctx context.Context, id uuid.UUID) apperrors.Error
	ListColors(ctx context.Context, brandID, materialID, modifierID string) ([]*models.CatalogColor, apperrors.Error)
	ListAvailableModifiers(ctx context.Context, brandID, materialID string) ([]string, apperrors.Error)
}

// SpoolManager handles the physical spool inventory.
// All operations require a valid context and may return apperrors.Error for
// various failure cases.
type SpoolManager interface {
	CreateSpool(ctx context.Context, spool *models.Spool) apperrors.Error
	GetSpool(ctx context.Context, id uuid.UUID) (*models.Spool, apperrors.Error)
	UpdateSpool(ctx context.Context, spool *models.Spool) apperrors.Error
	DeleteSpool(ctx context.Context, id uuid.UUID) apperrors.Error
	ListSpools(ctx context.Context) ([]*models.Spool, apperrors.Error)
}

// ConnectionManager handles database connection management.
type ConnectionManager interface {
	// Close the connection to the database.
	Close(ctx context.Context)
}

// Database interface combines all three managers into a single interface.
// This allows for a unified database access layer while maintaining separation of concerns.
type Database interface {
	CatalogManager
	SpoolManager
	ConnectionManager
}

var pool dbmanager.Pool

// Init initializes the database connection pool.
func Init() {
	ctx := log.Logger.WithContext(context.Background())
	pg := dbmanager.NewPool(ctx, "postgresql")
	if pg == nil {
		panic("unable to create db pool")
	}
	pool = pg
}

// Conn returns a new database connection from the pool.
// Returns an error if the connection cannot be established.
func Conn(ctx context.Context) (dbmanager.Conn, error) {
	if pool != nil {
		conn, err := pool.Conn(ctx)
		if err == nil {
			return conn, nil
		}
		log.Ctx(ctx).Error().Err(err).Msg("unable to get db connection")
		return nil, err
	}
	return nil, fmt.Errorf("database pool not initialized")
}

type ctxDbKeyType string

const ctxDbKey ctxDbKeyType = "SpooltrackInventoryDb"

// ConnCtx adds a database connection to the context.
// Returns an error if the connection cannot be established.
func ConnCtx(ctx context.Context) (context.Context, error) {
	conn, err := Conn(ctx)
	if err != nil {
		return nil, err
	}
	return context.WithValue(ctx, ctxDbKey, conn), nil
}

type spooltrackInventoryDb struct {
	CatalogManager
	SpoolManager
	ConnectionManager
}

// DB returns a new database instance from the context.
// It expects a valid database connection in the context.
// Returns nil if no connection is found in the context.
func DB(ctx context.Context) Database {
	if conn, ok := ctx.Value(ctxDbKey).(dbmanager.Conn); ok {
		cm, sm, xm := postgresql.NewInventoryDb(conn)
		return &spooltrackInventoryDb{
			CatalogManager:    cm,
			SpoolManager:      sm,
			ConnectionManager: xm,
		}
	}
	log.Ctx(ctx).Error().Msg("unable to get db connection from context")
	return nil
}
