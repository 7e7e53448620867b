// Package mock provides test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection that stands in for
// PostgreSQL during the feature suite.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared in-memory database and migrates the given models.
// The models map is keyed by table name so steps can assert row counts.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	mockDb := &Db{
		DbConn: dbConn,
		models: models,
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := dbConn.AutoMigrate(modelList...); err != nil {
		panic(fmt.Sprintf("failed to migrate: %s", err))
	}

	return mockDb
}

// ClearDB deletes every row from every registered table.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// GetModel returns the registered model for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
