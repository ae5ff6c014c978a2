// Package export renders record batches as CSV text or SQL scripts.
package export

import (
	"strings"

	"datagen-api/internal/models"
)

// RenderCSV renders records as CSV. The first line is the requested field
// list verbatim; each following line holds the matching values. Field
// names match record keys case- and space-insensitively, and a field
// absent from a record renders as an empty cell. This exporter is lenient:
// it never fails on unknown fields.
func RenderCSV(records []*models.Record, fields []string) string {
	var b strings.Builder

	b.WriteString(strings.Join(fields, ","))
	b.WriteByte('\n')

	row := make([]string, len(fields))
	for _, record := range records {
		for i, field := range fields {
			value, ok := record.Lookup(field)
			if !ok {
				value = ""
			}
			row[i] = value
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}

	return b.String()
}
