package models

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

/*
Column Mismatch Report Usage:

Lists database columns that no field of the corresponding Go model maps to,
which usually means a column was added by hand or left behind by a rename.

To generate the report:

1. Set the environment variable: GENERATE_COLUMN_REPORT=true
2. Run the application: go run .

Example output:
=== COLUMN MISMATCH REPORT ===
--- Table: projects ---
Found 1 columns not accounted for in model:
  - legacy_slug

--- Table: skills ---
All columns are accounted for in the model.

=== SUMMARY ===
Total mismatched columns across all tables: 1
*/

// All returns every persisted model in dependency order
func All() []any {
	return []any{
		&Profile{},
		&Education{},
		&SkillCategory{},
		&Skill{},
		&Project{},
		&ProjectTag{},
		&Achievement{},
		&CertificateCategory{},
		&Certificate{},
		&GalleryImage{},
		&ContactMessage{},
		&TypingText{},
	}
}

// ColumnMismatches maps table name to the columns that exist in the database
// but not in the model. Tables that do not exist yet are skipped.
func ColumnMismatches(db *gorm.DB) (map[string][]string, error) {
	report := make(map[string][]string)
	cache := &sync.Map{}

	for _, model := range All() {
		s, err := schema.Parse(model, cache, db.NamingStrategy)
		if err != nil {
			return nil, fmt.Errorf("parse schema for %T: %w", model, err)
		}

		if !db.Migrator().HasTable(s.Table) {
			continue
		}

		columnTypes, err := db.Migrator().ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("error querying columns for table %s: %w", s.Table, err)
		}

		dbColumns := make([]string, 0, len(columnTypes))
		for _, ct := range columnTypes {
			dbColumns = append(dbColumns, ct.Name())
		}

		report[s.Table] = findColumnMismatches(dbColumns, s.DBNames)
	}

	return report, nil
}

// WriteColumnMismatchReport prints the report in a human readable layout
func WriteColumnMismatchReport(w io.Writer, db *gorm.DB) error {
	report, err := ColumnMismatches(db)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== COLUMN MISMATCH REPORT ===")

	tables := make([]string, 0, len(report))
	for table := range report {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	total := 0
	for _, table := range tables {
		mismatches := report[table]
		fmt.Fprintf(w, "\n--- Table: %s ---\n", table)
		if len(mismatches) == 0 {
			fmt.Fprintln(w, "All columns are accounted for in the model.")
			continue
		}
		fmt.Fprintf(w, "Found %d columns not accounted for in model:\n", len(mismatches))
		for _, col := range mismatches {
			fmt.Fprintf(w, "  - %s\n", col)
		}
		total += len(mismatches)
	}

	fmt.Fprintf(w, "\n=== SUMMARY ===\n")
	fmt.Fprintf(w, "Total mismatched columns across all tables: %d\n", total)
	return nil
}

// findColumnMismatches finds columns that exist in the database but not in the model
func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	mismatches := []string{}
	for _, col := range dbColumns {
		if !modelFieldSet[col] {
			mismatches = append(mismatches, col)
		}
	}

	return mismatches
}
