package models

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Document is a single saved item as returned by the Reader API.
// The record is kept as raw JSON so fields the client does not know about
// survive a round trip untouched and keep their original order.
type Document struct {
	raw json.RawMessage
}

// NewDocument wraps raw JSON bytes. The bytes are copied.
func NewDocument(raw []byte) Document {
	return Document{raw: append(json.RawMessage(nil), raw...)}
}

// Raw returns the document exactly as the server sent it.
func (d Document) Raw() json.RawMessage {
	return d.raw
}

// Get looks up a top-level field.
func (d Document) Get(key string) gjson.Result {
	if len(d.raw) == 0 {
		return gjson.Result{}
	}
	return gjson.GetBytes(d.raw, gjson.Escape(key))
}

// Has reports whether key is present with a non-null value.
func (d Document) Has(key string) bool {
	r := d.Get(key)
	return r.Exists() && r.Type != gjson.Null
}

// StringOr returns the field rendered as text, or fallback when the field
// is missing or null.
func (d Document) StringOr(key, fallback string) string {
	if !d.Has(key) {
		return fallback
	}
	return d.Get(key).String()
}

func (d Document) MarshalJSON() ([]byte, error) {
	if len(d.raw) == 0 {
		return []byte("null"), nil
	}
	return d.raw, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	d.raw = append(d.raw[:0], bytes.TrimSpace(data)...)
	return nil
}

// Page is one response of the list endpoint.
type Page struct {
	Count          int        `json:"count"`
	NextPageCursor string     `json:"nextPageCursor"`
	Results        []Document `json:"results"`
}
