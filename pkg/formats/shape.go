// Package formats provides parsers for the EasyEDA component payloads:
// tilde-delimited shape records, component/product JSON and the embedded
// OBJ/MTL mesh text.
package formats

import "strings"

// ShapeDelimiter separates the fields of a shape record.
const ShapeDelimiter = "~"

// ShapeRecord is one decoded line of a footprint shape description.
type ShapeRecord struct {
	Tag    string   // Primitive tag, e.g. "TRACK" or "PAD"
	Fields []string // Remaining non-empty fields, in order
	Line   int      // Index of the source line
}

// Field returns the i-th field, or "" when absent.
func (r ShapeRecord) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// DecodeRecord splits one shape line into a record. Empty tokens are dropped
// before the tag is taken, so field positions are relative to the non-empty
// tokens only. It returns false when nothing is left.
func DecodeRecord(line string) (ShapeRecord, bool) {
	var tokens []string
	for _, tok := range strings.Split(line, ShapeDelimiter) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return ShapeRecord{}, false
	}
	return ShapeRecord{Tag: tokens[0], Fields: tokens[1:]}, true
}

// DecodeRecords decodes a batch of shape lines, skipping malformed ones.
func DecodeRecords(lines []string) []ShapeRecord {
	records := make([]ShapeRecord, 0, len(lines))
	for i, line := range lines {
		rec, ok := DecodeRecord(line)
		if !ok {
			continue
		}
		rec.Line = i
		records = append(records, rec)
	}
	return records
}
