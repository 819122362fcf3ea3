// Description: This file contains the implementation of the inventoryDb interface for the PostgreSQL database.
package postgresql

import (
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/dbmanager"
)

type inventoryDb struct {
	cm *catalogManager
	sm *spoolManager
	xm *connectionManager
}

func NewInventoryDb(c dbmanager.Conn) (*catalogManager, *spoolManager, *connectionManager) {
	h := &inventoryDb{}
	h.cm = newCatalogManager(c)
	h.sm = newSpoolManager(c)
	h.xm = newConnectionManager(c)
	return h.cm, h.sm, h.xm
}
