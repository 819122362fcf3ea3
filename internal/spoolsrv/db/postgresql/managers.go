package postgresql

import (
	"context"
	"database/sql"

	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/dbmanager"
)

// Catalog Manager
type catalogManager struct {
	c dbmanager.Conn
}

func (cm *catalogManager) conn() *sql.Conn {
	return cm.c.Conn()
}

func newCatalogManager(c dbmanager.Conn) *catalogManager {
	return &catalogManager{c: c}
}

// Spool Manager
type spoolManager struct {
	c dbmanager.Conn
}

func (sm *spoolManager) conn() *sql.Conn {
	return sm.c.Conn()
}

func newSpoolManager(c dbmanager.Conn) *spoolManager {
	return &spoolManager{c: c}
}

// Connection Manager
type connectionManager struct {
	c dbmanager.Conn
}

func newConnectionManager(c dbmanager.Conn) *connectionManager {
	return &connectionManager{c: c}
}

func (xm *connectionManager) Close(ctx context.Context) {
	xm.c.Close(ctx)
}
