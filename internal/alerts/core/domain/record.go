package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	// UndefinedLabel is the label of a field the record does not carry at all.
	UndefinedLabel = "undefined"
	// InvalidDateLabel is the day label of a timestamp that cannot be read as a date.
	InvalidDateLabel = "Invalid Date"
)

// Field keeps the raw JSON of an optional record attribute so that an absent
// value, an explicit null and typed values stay distinguishable.
type Field struct {
	raw json.RawMessage
	set bool
}

// StringField returns a field holding the JSON string s.
func StringField(s string) Field {
	b, _ := json.Marshal(s)
	return Field{raw: b, set: true}
}

// RawField returns a field holding raw JSON text, e.g. `3` or `null`.
func RawField(raw string) Field {
	return Field{raw: json.RawMessage(raw), set: true}
}

func (f *Field) UnmarshalJSON(b []byte) error {
	f.raw = append(json.RawMessage(nil), b...)
	f.set = true
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return f.raw, nil
}

// IsZero reports whether the field was absent; used by the omitzero tag.
func (f Field) IsZero() bool {
	return !f.set
}

func (f Field) IsSet() bool {
	return f.set
}

// Label renders the field the way a dashboard key is rendered: strings
// verbatim, numbers and booleans as their literal text, null as "null" and an
// absent field as "undefined".
func (f Field) Label() string {
	if !f.set {
		return UndefinedLabel
	}
	v, ok := f.decode()
	if !ok {
		return UndefinedLabel
	}
	return coerceLabel(v)
}

func (f Field) decode() (any, bool) {
	dec := json.NewDecoder(bytes.NewReader(f.raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

func coerceLabel(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return formatNumber(t)
	case []any:
		parts := make([]string, len(t))
		for i, el := range t {
			if el == nil {
				continue
			}
			parts[i] = coerceLabel(el)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

func formatNumber(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	if f == 0 {
		return "0"
	}
	if math.Abs(f) >= 1e21 || math.Abs(f) < 1e-6 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// AlertFields is the nested "alert" object of a record.
type AlertFields struct {
	Category  Field `json:"category,omitzero"`
	Severity  Field `json:"severity,omitzero"`
	Signature Field `json:"signature,omitzero"`
}

// UnmarshalJSON tolerates non-object values; they carry no alert fields.
func (a *AlertFields) UnmarshalJSON(b []byte) error {
	type plain AlertFields

	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		*a = AlertFields{}
		return nil
	}

	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*a = AlertFields(p)
	return nil
}

// Record is a single alert entry. Every attribute is optional.
type Record struct {
	ID        string       `json:"id,omitempty"`
	Alert     *AlertFields `json:"alert,omitempty"`
	Timestamp Field        `json:"timestamp,omitzero"`
}

func (r Record) Category() Field {
	if r.Alert == nil {
		return Field{}
	}
	return r.Alert.Category
}

func (r Record) Severity() Field {
	if r.Alert == nil {
		return Field{}
	}
	return r.Alert.Severity
}
