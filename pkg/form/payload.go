package form

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Payload is the data sent to a delivery backend. Values holds trimmed field
// values keyed by field name; optional fields are always present, possibly
// empty.
type Payload struct {
	Kind   Kind
	Values map[string]string
}

// MarshalJSON encodes only the field values, e.g. {"email":"a@b.co"}.
func (p Payload) MarshalJSON() ([]byte, error) {
	if p.Values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.Values)
}

// Get returns the value of field, or "" if absent.
func (p Payload) Get(field string) string {
	return p.Values[field]
}

// Params returns a copy of the values, suitable for template parameters.
func (p Payload) Params() map[string]string {
	params := make(map[string]string, len(p.Values))
	for k, v := range p.Values {
		params[k] = v
	}
	return params
}

// BuildPayload validates fields for kind and, when valid, returns a payload
// with every field of the form trimmed and NFC-normalized. Fields that do not
// belong to the form are dropped.
func BuildPayload(kind Kind, fields Fields) (Payload, error) {
	names := FieldNames(kind)
	if names == nil {
		return Payload{}, ErrUnknownKind
	}

	if res := Validate(fields, RequiredFields(kind)); !res.Valid {
		return Payload{}, res.Err()
	}

	values := make(map[string]string, len(names))
	for _, name := range names {
		values[name] = normalize(fields[name])
	}
	return Payload{Kind: kind, Values: values}, nil
}

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
