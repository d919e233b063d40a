package database

import (
	"database/sql"
	"fmt"
	"strings"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/villageboy09/kiosk/config"
	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/logger"
)

// Models lists every table the service reads or writes, in dependency order.
func Models() []any {
	return []any{
		&entities.Crop{},
		&entities.Stage{},
		&entities.Variety{},
		&entities.StageDuration{},
		&entities.Problem{},
		&entities.StageLink{},
		&entities.Advisory{},
		&entities.Component{},
		&entities.IdentifiedProblem{},
	}
}

func Dialector(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "sqlite":
		return sqlite.Open(cfg.Path), nil
	case "mysql":
		return mysql.Open(cfg.DSN), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// Open connects and applies pool settings. Schema changes are left to Migrate.
func Open(cfg config.DBConfig, log *logger.Logger) (*gorm.DB, error) {
	dial, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dial, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   NewGormLogger(log, gormLogger.Warn, slowQuery),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	// the junction rebuild has to run before AutoMigrate, which cannot add a
	// primary key to an existing SQLite table
	if db.Dialector.Name() == "sqlite" {
		if err := migrateProblemStagesAddPK(db); err != nil {
			return fmt.Errorf("problem_stages: %w", err)
		}
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// migrateProblemStagesAddPK rebuilds a problem_stages table that was created
// with only (problem_id, stage_id) and no surrogate id. Ids are assigned in
// table scan order.
func migrateProblemStagesAddPK(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='problem_stages'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		return nil
	}

	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(problem_stages)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	for _, c := range cols {
		if strings.EqualFold(c.Name, "id") && c.Pk == 1 {
			return nil
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		stmts := []string{
			`PRAGMA foreign_keys=OFF`,
			`CREATE TABLE problem_stages_new (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    problem_id INTEGER,
    stage_id INTEGER
)`,
			`INSERT INTO problem_stages_new (problem_id, stage_id) SELECT problem_id, stage_id FROM problem_stages`,
			`DROP TABLE problem_stages`,
			`ALTER TABLE problem_stages_new RENAME TO problem_stages`,
			`PRAGMA foreign_keys=ON`,
		}
		for _, s := range stmts {
			if err := tx.Exec(s).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
