package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// MediaKind tells how a MediaRef was stored
type MediaKind uint8

const (
	MediaNone MediaKind = iota
	MediaExternal
	MediaStored
)

func (k MediaKind) String() string {
	switch k {
	case MediaExternal:
		return "external"
	case MediaStored:
		return "stored"
	default:
		return "none"
	}
}

// MediaRef is a reference to an image or document: either a literal absolute
// URL (content uploaded to an external provider) or a key in the configured
// storage backend. It is persisted as a single nullable text column.
type MediaRef struct {
	kind  MediaKind
	value string
}

// ExternalURL builds a reference to an absolute URL
func ExternalURL(u string) MediaRef {
	if u == "" {
		return MediaRef{}
	}
	return MediaRef{kind: MediaExternal, value: u}
}

// StoredFile builds a reference to a key in the storage backend
func StoredFile(key string) MediaRef {
	if key == "" {
		return MediaRef{}
	}
	return MediaRef{kind: MediaStored, value: key}
}

// ParseMediaRef classifies a raw stored value
func ParseMediaRef(raw string) MediaRef {
	switch {
	case raw == "":
		return MediaRef{}
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return ExternalURL(raw)
	default:
		return StoredFile(raw)
	}
}

func (m MediaRef) Kind() MediaKind { return m.kind }

func (m MediaRef) IsZero() bool { return m.kind == MediaNone }

// String returns the raw stored value
func (m MediaRef) String() string { return m.value }

// Scan implements sql.Scanner
func (m *MediaRef) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = MediaRef{}
	case string:
		*m = ParseMediaRef(v)
	case []byte:
		*m = ParseMediaRef(string(v))
	default:
		return fmt.Errorf("media ref: cannot scan %T", src)
	}
	return nil
}

// Value implements driver.Valuer
func (m MediaRef) Value() (driver.Value, error) {
	if m.kind == MediaNone {
		return nil, nil
	}
	return m.value, nil
}

// GormDataType keeps the column a plain text column on every dialect
func (MediaRef) GormDataType() string {
	return "text"
}

func (m MediaRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.value)
}

func (m *MediaRef) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("media ref: %w", err)
	}
	if raw == nil {
		*m = MediaRef{}
		return nil
	}
	*m = ParseMediaRef(*raw)
	return nil
}
