// Document model for dashboard configuration documents.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Contractually significant document fields.
const (
	FieldVersion = "version"
	FieldType    = "type"
)

// Document is an open-ended mapping of fields. Migration steps mutate it in
// place; the caller owns it before and after migration.
type Document map[string]any

// Has reports whether field is present, regardless of its value.
func (d Document) Has(field string) bool {
	_, ok := d[field]
	return ok
}

// Version returns the declared schema version. The second result is false
// when the document carries no version field.
//
// JSON numbers and strings are both accepted, so 1 and "1" name the same
// version.
func (d Document) Version() (VersionID, bool, error) {
	raw, ok := d[FieldVersion]
	if !ok || raw == nil {
		return "", false, nil
	}
	switch v := raw.(type) {
	case string:
		return ParseVersionID(v), true, nil
	case json.Number:
		return ParseVersionID(v.String()), true, nil
	case float64:
		return ParseVersionID(strconv.FormatFloat(v, 'f', -1, 64)), true, nil
	case int:
		return ParseVersionID(strconv.Itoa(v)), true, nil
	case int64:
		return ParseVersionID(strconv.FormatInt(v, 10)), true, nil
	default:
		return "", true, fmt.Errorf("%w: version field has type %T", ErrInvalidDocument, raw)
	}
}

// SetVersion stamps the document with id.
func (d Document) SetVersion(id VersionID) {
	d[FieldVersion] = string(id)
}
