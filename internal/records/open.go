package records

import (
	"fmt"

	"github.com/HendryAvila/elicitd/internal/config"
)

// Open creates the store selected by cfg.Driver.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return NewMemoryStore(), nil
	case config.DriverSQLite:
		return NewSQLStore(cfg.Path)
	default:
		return nil, fmt.Errorf("records: unknown store driver %q", cfg.Driver)
	}
}
