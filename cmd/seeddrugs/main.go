// seeddrugs generates a SQL seed script for the stock_items table from the
// legacy drug catalogue CSV, which was exported from the old desktop system in
// Windows-1252.
//
// Usage: go run ./cmd/seeddrugs [path/drugs.csv]
// By default it looks for drugs.csv in the current directory.
// Writes: internal/infrastructure/postgres/migrations/002_seed_drugs.sql
//
// Expected CSV columns: id, name, unit, unit_price, current_stock, reorder_level
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type drugRow struct {
	id           int64
	name         string
	unit         string
	unitPrice    string
	currentStock string
	reorderLevel string
}

func main() {
	csvPath := "drugs.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// The legacy export is Windows-1252; drug names carry accented characters.
	r := csv.NewReader(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	r.FieldsPerRecord = 6

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read CSV: %v\n", err)
		os.Exit(1)
	}

	var rows []drugRow
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "id") {
			continue // header
		}
		id, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
		if err != nil || id <= 0 {
			fmt.Fprintf(os.Stderr, "row %d: bad id %q, skipping\n", i+1, rec[0])
			continue
		}
		name := strings.TrimSpace(rec[1])
		if name == "" {
			continue
		}
		rows = append(rows, drugRow{
			id:           id,
			name:         name,
			unit:         strings.TrimSpace(rec[2]),
			unitPrice:    numericOrZero(rec[3]),
			currentStock: numericOrZero(rec[4]),
			reorderLevel: numericOrZero(rec[5]),
		})
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "no usable rows in the catalogue")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_drugs.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Drug catalogue seed\n")
	out.WriteString("-- Generated from the legacy Windows-1252 CSV export\n\n")
	out.WriteString("INSERT INTO stock_items (id, name, unit, unit_price, current_stock, reorder_level) VALUES\n")
	for i, d := range rows {
		sep := ","
		if i == len(rows)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  (%d, '%s', '%s', %s, %s, %s)%s\n",
			d.id, escapeSQL(d.name), escapeSQL(d.unit), d.unitPrice, d.currentStock, d.reorderLevel, sep)
	}
	out.WriteString("ON CONFLICT (id) DO UPDATE SET\n")
	out.WriteString("  name = EXCLUDED.name,\n")
	out.WriteString("  unit = EXCLUDED.unit,\n")
	out.WriteString("  unit_price = EXCLUDED.unit_price,\n")
	out.WriteString("  reorder_level = EXCLUDED.reorder_level;\n")

	fmt.Printf("wrote %s: %d items\n", outPath, len(rows))
}

// numericOrZero validates a decimal field, falling back to 0 so a blank cell
// in the export does not produce broken SQL.
func numericOrZero(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "0"
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "0"
	}
	return s
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
