package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Top-level keys the translation defaults are computed from.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldTranslations = "translations"
)

// Translation is the localized name and description of a workflow. Both hold
// raw JSON so that whatever the record carries is copied as written.
type Translation struct {
	Name        json.RawMessage `json:"name"`
	Description json.RawMessage `json:"description"`
}

// Translations maps a locale code to its Translation.
type Translations map[string]Translation

// Record is one workflow definition file. Top-level keys keep their original
// order and raw JSON value; Name, Description and Translations are views over
// the raw values of the keys of the same name and are nil when the key is
// absent. Their JSON type is never checked.
type Record struct {
	Name         json.RawMessage `json:"name"`
	Description  json.RawMessage `json:"description"`
	Translations json.RawMessage `json:"translations"`

	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// DecodeRecord parses data as a JSON object. The returned error wraps ErrParse
// when data is not a JSON object.
func DecodeRecord(data []byte) (*Record, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrParse)
	}

	fields := orderedmap.New[string, json.RawMessage]()
	if err := fields.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	r := &Record{fields: fields}
	r.Name, _ = fields.Get(FieldName)
	r.Description, _ = fields.Get(FieldDescription)
	r.Translations, _ = fields.Get(FieldTranslations)
	return r, nil
}

// Validate checks that the record holds what is needed to synthesize its
// translations: a name, of any JSON type, is required only while translations
// are absent.
func (r *Record) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.When(!r.Has(FieldTranslations), validation.NotNil)),
	)
	var errs validation.Errors
	if errors.As(err, &errs) {
		if _, missing := errs[FieldName]; missing {
			return &FieldError{Field: FieldName, Err: ErrMissingField}
		}
	}
	return err
}

// Has reports whether the record has the top-level key.
func (r *Record) Has(key string) bool {
	_, ok := r.fields.Get(key)
	return ok
}

// Keys returns the top-level keys in document order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// SetDescription sets the description, appending the key if it is new.
func (r *Record) SetDescription(description string) error {
	raw, err := marshalValue(description)
	if err != nil {
		return err
	}
	r.fields.Set(FieldDescription, raw)
	r.Description = raw
	return nil
}

// SetTranslations sets the translations, appending the key if it is new.
func (r *Record) SetTranslations(translations Translations) error {
	raw, err := marshalValue(translations)
	if err != nil {
		return err
	}
	r.fields.Set(FieldTranslations, raw)
	r.Translations = raw
	return nil
}

// Encode serializes the record with two-space indentation. Non-ASCII text and
// HTML characters are written literally and no trailing newline is added.
func (r *Record) Encode() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		if compact.Len() > 1 {
			compact.WriteByte(',')
		}
		key, err := marshalValue(pair.Key)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(pair.Value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return out.Bytes(), nil
}

func marshalValue(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
