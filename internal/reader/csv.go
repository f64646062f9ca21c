package reader

import (
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"blist_converter/internal/contacts"
	"blist_converter/platform/apperr"
	"blist_converter/platform/sanitize"
)

const (
	columnName       = "FN"
	columnCategories = "CATEGORIES"
	telMarker        = "TEL"
)

// CSVReader reads tabular exports whose header uses vCard property names:
// FN, CATEGORIES and any number of TEL;TYPE=...;TYPE=... columns.
type CSVReader struct {
	escape rune
}

// NewCSVReader creates a CSVReader. escape is a single character that makes
// the following character literal inside a field; empty disables escaping.
func NewCSVReader(escape string) *CSVReader {
	var r rune
	if escape != "" {
		r, _ = utf8.DecodeRuneInString(escape)
	}
	return &CSVReader{escape: r}
}

type telColumn struct {
	index  int
	params contacts.Params
}

// Read parses the CSV document in r. Without an FN column no record has a
// name, so nothing is returned.
func (cr *CSVReader) Read(r io.Reader) ([]contacts.RawContact, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindBadInput, "failed to read CSV input", err).WithOp("reader.CSV")
	}

	rows, err := cr.rows(string(raw))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindBadInput, "failed to parse CSV input", err).WithOp("reader.CSV")
	}
	if len(rows) == 0 {
		return []contacts.RawContact{}, nil
	}

	header := rows[0]
	nameIdx, catIdx := -1, -1
	var tels []telColumn
	for i, col := range header {
		switch {
		case col == columnName:
			nameIdx = i
		case col == columnCategories:
			catIdx = i
		case strings.Contains(col, telMarker):
			tels = append(tels, telColumn{index: i, params: headerParams(col)})
		}
	}

	records := make([]contacts.RawContact, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if nameIdx < 0 || nameIdx >= len(row) {
			continue
		}

		record := contacts.RawContact{Name: sanitize.Text(row[nameIdx])}
		if catIdx >= 0 && catIdx < len(row) && row[catIdx] != "" {
			record.Categories = sanitize.Texts(strings.Split(row[catIdx], ","))
		}
		for _, tel := range tels {
			if tel.index >= len(row) || row[tel.index] == "" {
				continue
			}
			record.Numbers = append(record.Numbers, contacts.RawNumber{
				Value:  row[tel.index],
				Params: cloneParams(tel.params),
			})
		}
		records = append(records, record)
	}

	return records, nil
}

// rows splits the document into records. Without an escape character this is
// plain RFC 4180 via encoding/csv.
func (cr *CSVReader) rows(doc string) ([][]string, error) {
	if cr.escape == 0 {
		rows := csv.NewReader(strings.NewReader(doc))
		rows.FieldsPerRecord = -1
		rows.LazyQuotes = true
		return rows.ReadAll()
	}
	return cr.splitEscaped(doc), nil
}

// headerParams parses the parameters of a column header such as
// "TEL;TYPE=cell;TYPE=pref". A parameter without '=' is a TYPE value.
func headerParams(header string) contacts.Params {
	params := contacts.Params{}
	parts := strings.Split(header, ";")
	for _, part := range parts[1:] {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			params.Add("TYPE", strings.TrimSpace(part))
			continue
		}
		params.Add(name, strings.TrimSpace(value))
	}
	return params
}

func cloneParams(p contacts.Params) contacts.Params {
	out := make(contacts.Params, len(p))
	for k, v := range p {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// splitEscaped splits doc into records the way exports with an escape
// character expect: the escape makes the next character literal both inside
// and outside quotes, so "Smith\, John" is a single field. A quote opens a
// quoted field only at the start of a field; "" inside quotes is a quote.
// Blank lines are skipped.
func (cr *CSVReader) splitEscaped(doc string) [][]string {
	var (
		records    [][]string
		record     []string
		field      strings.Builder
		inQuotes   bool
		escaped    bool
		fieldStart = true
		lineEmpty  = true
	)

	endField := func() {
		record = append(record, field.String())
		field.Reset()
		fieldStart = true
	}
	endRecord := func() {
		if !lineEmpty {
			endField()
			records = append(records, record)
		}
		record = nil
		field.Reset()
		fieldStart = true
		lineEmpty = true
	}

	runes := []rune(doc)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case escaped:
			field.WriteRune(r)
			escaped = false
		case r == cr.escape:
			escaped = true
			fieldStart = false
			lineEmpty = false
		case inQuotes:
			if r != '"' {
				field.WriteRune(r)
			} else if i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = false
			}
		case r == '"' && fieldStart:
			inQuotes = true
			fieldStart = false
			lineEmpty = false
		case r == ',':
			endField()
			lineEmpty = false
		case r == '\r' && i+1 < len(runes) && runes[i+1] == '\n':
			// handled by the following newline
		case r == '\n':
			endRecord()
		default:
			field.WriteRune(r)
			fieldStart = false
			lineEmpty = false
		}
	}
	if escaped {
		field.WriteRune(cr.escape)
	}
	endRecord()

	return records
}
