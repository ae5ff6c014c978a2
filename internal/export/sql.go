package export

import (
	"fmt"
	"strings"

	"datagen-api/internal/models"
)

// SQLMode selects the relational shape of the generated script. The mode
// is always a caller choice, never inferred from the data.
type SQLMode int

const (
	// ModeTwoTable emits a persons/addresses pair with a primary key on
	// persons.id and per-record inserts into both tables.
	ModeTwoTable SQLMode = iota
	// ModeSingleTable emits one caller-named table, dropped and recreated,
	// with columns in a fixed preferred order.
	ModeSingleTable
)

// DefaultTableName names the single-table target when the caller does not
// supply one.
const DefaultTableName = "generated_people"

// sqlColumn describes one entry of the strict export vocabulary.
type sqlColumn struct {
	canonical string // canonicalized request token
	field     string // record field it reads from
	column    string // column name in two-table mode
	dynColumn string // column name in single-table mode
	sqlType   string
	person    bool // persons table (vs addresses) in two-table mode
}

// sqlVocabulary is the closed set of fields the SQL exporter accepts,
// in the single-table preferred column order.
var sqlVocabulary = []sqlColumn{
	{canonical: "id", field: models.FieldID, column: "id", dynColumn: "id", sqlType: "VARCHAR(50)", person: true},
	{canonical: "birthdate", field: models.FieldBirthDate, column: "birth_date", dynColumn: "birthdate", sqlType: "DATE", person: true},
	{canonical: "name", field: models.FieldName, column: "name", dynColumn: "name", sqlType: "VARCHAR(100)", person: true},
	{canonical: "surname", field: models.FieldSurname, column: "surname", dynColumn: "surname", sqlType: "VARCHAR(100)", person: true},
	{canonical: "street", field: models.FieldStreet, column: "street", dynColumn: "street", sqlType: "VARCHAR(100)"},
	{canonical: "city", field: models.FieldCity, column: "city", dynColumn: "city", sqlType: "VARCHAR(100)"},
	{canonical: "country", field: models.FieldCountry, column: "country", dynColumn: "country", sqlType: "VARCHAR(100)"},
	{canonical: "postalcode", field: models.FieldPostalCode, column: "postal_code", dynColumn: "postalcode", sqlType: "VARCHAR(10)"},
}

// RenderSQL renders records as a SQL script in the requested mode. Unlike
// the CSV exporter this one is strict: a requested field outside the
// vocabulary yields a models.FieldNotFoundError. When fields is empty,
// every vocabulary field present in any record is exported. The table name
// applies to single-table mode only.
func RenderSQL(records []*models.Record, fields []string, mode SQLMode, table string) (string, error) {
	requested, err := resolveFields(records, fields)
	if err != nil {
		return "", err
	}

	if mode == ModeSingleTable {
		if table == "" {
			table = DefaultTableName
		}
		return renderSingleTable(records, requested, table), nil
	}
	return renderTwoTable(records, requested), nil
}

// resolveFields maps the request onto canonical vocabulary tokens. With an
// explicit request every field must resolve; with an empty request the
// union of record keys is filtered to the vocabulary silently.
func resolveFields(records []*models.Record, fields []string) (map[string]bool, error) {
	known := make(map[string]bool, len(sqlVocabulary))
	for _, col := range sqlVocabulary {
		known[col.canonical] = true
	}

	requested := make(map[string]bool)
	if len(fields) > 0 {
		for _, field := range fields {
			canonical := models.CanonicalField(field)
			if !known[canonical] {
				return nil, &models.FieldNotFoundError{Field: field}
			}
			requested[canonical] = true
		}
		return requested, nil
	}

	for _, record := range records {
		for _, key := range record.Keys() {
			canonical := models.CanonicalField(key)
			if known[canonical] {
				requested[canonical] = true
			}
		}
	}
	return requested, nil
}

// renderTwoTable emits the persons/addresses schema and inserts. The
// persons primary key is always present even when not requested; a table
// with no requested non-key columns gets a comment instead of inserts.
func renderTwoTable(records []*models.Record, requested map[string]bool) string {
	var personCols, addressCols []sqlColumn
	for _, col := range sqlVocabulary {
		if col.canonical == "id" || !requested[col.canonical] {
			continue
		}
		if col.person {
			personCols = append(personCols, col)
		} else {
			addressCols = append(addressCols, col)
		}
	}

	var b strings.Builder

	b.WriteString("CREATE TABLE IF NOT EXISTS persons (\n")
	b.WriteString("    id VARCHAR(50) PRIMARY KEY")
	for _, col := range personCols {
		fmt.Fprintf(&b, ",\n    %s %s", col.column, col.sqlType)
	}
	b.WriteString("\n);\n\n")

	b.WriteString("CREATE TABLE IF NOT EXISTS addresses (\n")
	b.WriteString("    person_id VARCHAR(50), -- references persons(id)")
	for _, col := range addressCols {
		fmt.Fprintf(&b, ",\n    %s %s", col.column, col.sqlType)
	}
	b.WriteString(",\n    PRIMARY KEY (person_id)\n);\n\n")

	if len(personCols) == 0 {
		b.WriteString("-- no person columns requested; skipping persons inserts\n")
	}
	if len(addressCols) == 0 {
		b.WriteString("-- no address columns requested; skipping addresses inserts\n")
	}

	for _, record := range records {
		id := sqlValue(record, models.FieldID)

		if len(personCols) > 0 {
			columns := []string{"id"}
			values := []string{id}
			for _, col := range personCols {
				columns = append(columns, col.column)
				values = append(values, sqlValue(record, col.field))
			}
			fmt.Fprintf(&b, "INSERT INTO persons (%s) VALUES (%s);\n",
				strings.Join(columns, ", "), strings.Join(values, ", "))
		}

		if len(addressCols) > 0 {
			columns := []string{"person_id"}
			values := []string{id}
			for _, col := range addressCols {
				columns = append(columns, col.column)
				values = append(values, sqlValue(record, col.field))
			}
			fmt.Fprintf(&b, "INSERT INTO addresses (%s) VALUES (%s);\n",
				strings.Join(columns, ", "), strings.Join(values, ", "))
		}
	}

	return b.String()
}

// renderSingleTable emits the drop/create/insert script for one dynamic
// table, columns filtered to the request in vocabulary order.
func renderSingleTable(records []*models.Record, requested map[string]bool, table string) string {
	var cols []sqlColumn
	for _, col := range sqlVocabulary {
		if requested[col.canonical] {
			cols = append(cols, col)
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "DROP TABLE IF EXISTS %s;\n", table)
	fmt.Fprintf(&b, "CREATE TABLE %s (", table)
	for i, col := range cols {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "\n    %s %s", col.dynColumn, col.sqlType)
	}
	b.WriteString("\n);\n\n")

	columns := make([]string, len(cols))
	for i, col := range cols {
		columns[i] = col.dynColumn
	}

	for _, record := range records {
		values := make([]string, len(cols))
		for i, col := range cols {
			values[i] = sqlValue(record, col.field)
		}
		fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES (%s);\n",
			table, strings.Join(columns, ", "), strings.Join(values, ", "))
	}

	return b.String()
}

// sqlValue quotes a record value for SQL, doubling single quotes. Missing
// or empty values render as NULL.
func sqlValue(record *models.Record, field string) string {
	value, ok := record.Lookup(field)
	if !ok || value == "" {
		return "NULL"
	}
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
