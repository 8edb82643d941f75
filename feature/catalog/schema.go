package catalog

import (
	"fmt"
	"sort"

	"catalog-sync/core/database"
	"catalog-sync/feature/catalog/models"

	"gorm.io/gorm"
)

// Migrate creates or alters every catalog table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}

// SchemaReport compares the models with the live tables.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists the model columns a live table lacks.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// VerifySchema inspects every catalog table and reports missing columns.
// Inspection failures are collected in the report rather than returned.
func VerifySchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		cols, err := database.GetTableColumns(db, table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		live := make(map[string]struct{}, len(cols))
		for _, c := range cols {
			live[c.Field] = struct{}{}
		}

		tr := TableReport{MissingColumns: []string{}, Status: "ok"}
		for _, name := range stmt.Schema.DBNames {
			if _, ok := live[name]; !ok {
				tr.MissingColumns = append(tr.MissingColumns, name)
			}
		}
		if len(cols) == 0 {
			report.Errors = append(report.Errors, fmt.Sprintf("table %s does not exist", table))
		}
		if len(tr.MissingColumns) > 0 {
			sort.Strings(tr.MissingColumns)
			tr.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tr
	}

	return report, nil
}
