// Package csvcodec round-trips flat records to the CSV dialect used by
// the import/export screens: an unquoted header row, then body rows in
// which every value is double-quoted with internal quotes doubled.
// Decoding is deliberately tolerant: malformed rows never error, missing
// columns are simply absent.
package csvcodec

import (
	"strconv"
	"strings"
	"time"
)

// Record is one decoded row: header name to raw string value. Decoding
// does not coerce types; numeric fields arrive as strings.
type Record map[string]string

func (r Record) Get(field string) string {
	return r[field]
}

func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Float parses a numeric field, defaulting to 0 when missing or
// unparseable. Import paths rely on this default rather than rejecting
// the row.
func (r Record) Float(field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r[field]), 64)
	if err != nil {
		return 0
	}
	return v
}

// ImportStats reports how an import landed.
type ImportStats struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// Encode renders rows under the given field order. Fields absent from a
// record render as empty quoted strings, keeping the column count stable.
func Encode(rows []Record, fields []string) string {
	var b strings.Builder
	b.WriteString(strings.Join(fields, ","))

	for _, row := range rows {
		b.WriteByte('\n')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(row[f]))
		}
	}
	return b.String()
}

// Decode parses CSV text into records keyed by the header row. Commas
// inside quoted segments do not split; doubled quotes unescape to one.
// Rows with fewer values than headers leave the trailing headers unset.
func Decode(text string) []Record {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return nil
	}

	headerFields := splitQuoted(strings.TrimRight(lines[0], "\r"))
	headers := make([]string, len(headerFields))
	for i, h := range headerFields {
		headers[i] = strings.TrimSpace(h)
	}

	var records []Record
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitQuoted(line)
		rec := make(Record, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(values) {
				rec[h] = values[i]
			}
		}
		records = append(records, rec)
	}
	return records
}

// Filename builds the conventional export name: <title>_<YYYY-MM-DD>.csv.
func Filename(title string) string {
	return title + "_" + time.Now().Format("2006-01-02") + ".csv"
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// splitQuoted splits on commas outside quoted segments. An unbalanced
// quote swallows the rest of the line into the current field instead of
// failing; tolerance here is what keeps hand-edited files importable.
func splitQuoted(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
