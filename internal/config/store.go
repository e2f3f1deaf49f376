package config

import (
	"fmt"
	"os"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Store struct {
	Driver     string
	SQLitePath string
}

func NewStore() (*Store, error) {
	driver, ok := os.LookupEnv("STORE_DRIVER")
	if !ok || driver == "" {
		driver = DriverMemory
	}

	cfg := &Store{Driver: driver}
	switch driver {
	case DriverMemory, DriverPostgres:
	case DriverSQLite:
		cfg.SQLitePath, ok = os.LookupEnv("SQLITE_PATH")
		if !ok {
			return nil, fmt.Errorf("no SQLITE_PATH env variable set")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}

	return cfg, nil
}
