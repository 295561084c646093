package models

import (
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Column Mismatch Report Usage:

Set GENERATE_COLUMN_REPORT=true and start the application. For each table the
report lists the columns that exist in the database but are not mapped by the
corresponding Go model, e.g.:

	table=members unmapped=[legacy_rank]
	table=projects all columns mapped

Set GENERATE_MODELS=true to migrate and then write typed query helpers to
./generated with gorm/gen.
*/

// All returns every persisted model, in dependency order.
func All() []any {
	return []any{&Member{}, &BlogPost{}, &Project{}}
}

// Migrate creates or updates the tables (and the blog post author join table).
func Migrate(db *gorm.DB) error {
	return db.Session(&gorm.Session{SkipDefaultTransaction: true}).AutoMigrate(All()...)
}

func GenerateModels(db *gorm.DB, outPath string) error {
	// Set up verbose logging for migration
	verbose := db.Session(&gorm.Session{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Info,
				IgnoreRecordNotFoundError: false,
				Colorful:                  true,
			},
		),
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	zlog.Info().Msg("Starting database migration...")
	if err := Migrate(verbose); err != nil {
		return fmt.Errorf("migrate models: %w", err)
	}

	if _, err := GenerateColumnMismatchReport(db); err != nil {
		return err
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(Member{}, BlogPost{}, Project{})
	g.Execute()

	zlog.Info().Str("outPath", outPath).Msg("Model generation complete")
	return nil
}

// GenerateColumnMismatchReport logs, per table, the database columns that no model field maps to
// and returns them keyed by table name. Tables that do not exist yet are skipped.
func GenerateColumnMismatchReport(db *gorm.DB) (map[string][]string, error) {
	report := make(map[string][]string)
	migrator := db.Migrator()

	for _, model := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		if !migrator.HasTable(table) {
			zlog.Warn().Str("table", table).Msg("table does not exist yet (will be created during migration)")
			continue
		}

		columnTypes, err := migrator.ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("error querying columns for table %s: %w", table, err)
		}

		mapped := make(map[string]bool, len(stmt.Schema.DBNames))
		for _, name := range stmt.Schema.DBNames {
			mapped[name] = true
		}

		var mismatches []string
		for _, ct := range columnTypes {
			if !mapped[ct.Name()] {
				mismatches = append(mismatches, ct.Name())
			}
		}
		sort.Strings(mismatches)
		report[table] = mismatches

		event := zlog.Info()
		if len(mismatches) > 0 {
			event = zlog.WithLevel(zerolog.WarnLevel)
		}
		event.Str("table", table).Strs("unmapped", mismatches).Msg("column mismatch report")
	}

	return report, nil
}
