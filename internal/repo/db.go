package repo

import (
	"errors"
	"fmt"
	"strings"

	"HomeStock/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// ErrVersionConflict: запись существует, но её версия уже изменилась.
var ErrVersionConflict = errors.New("version conflict")

// InitDB opens the database behind dsn and migrates the schema.
// Postgres URLs and keyword DSNs go to the postgres driver, anything else is
// treated as a SQLite file path (modernc.org/sqlite, no cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if db.Dialector.Name() == "sqlite" {
		if err := db.Exec("PRAGMA busy_timeout=5000").Error; err != nil {
			return nil, fmt.Errorf("set busy_timeout: %w", err)
		}
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates tables for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.List{}, &model.Item{}, &model.Image{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return backfillNameFold(db)
}

func dialectorFor(dsn string) gorm.Dialector {
	if isPostgresDSN(dsn) {
		return postgres.Open(dsn)
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
}

func isPostgresDSN(dsn string) bool {
	d := strings.TrimSpace(dsn)
	return strings.HasPrefix(d, "postgres://") ||
		strings.HasPrefix(d, "postgresql://") ||
		strings.Contains(d, "host=")
}

// likePattern builds a substring pattern over name_fold for LIKE ... ESCAPE '\'.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(model.FoldName(s)) + "%"
}

const nameLikeClause = `name_fold LIKE ? ESCAPE '\'`

// withNameFold keeps name_fold in step with a "name" column update.
// Map updates bypass the model BeforeSave hook.
func withNameFold(updates map[string]any) map[string]any {
	if name, ok := updates["name"].(string); ok {
		updates["name_fold"] = model.FoldName(name)
	}
	return updates
}

// backfillNameFold заполняет name_fold для строк, созданных до появления колонки.
func backfillNameFold(db *gorm.DB) error {
	type row struct {
		ID   int64
		Name string
	}
	for _, table := range []string{"lists", "items"} {
		var rows []row
		if err := db.Table(table).Select("id, name").
			Where("name_fold = ? AND name <> ?", "", "").Find(&rows).Error; err != nil {
			return fmt.Errorf("backfill %s: %w", table, err)
		}
		for _, r := range rows {
			if err := db.Table(table).Where("id = ?", r.ID).
				UpdateColumn("name_fold", model.FoldName(r.Name)).Error; err != nil {
				return fmt.Errorf("backfill %s: %w", table, err)
			}
		}
	}
	return nil
}
