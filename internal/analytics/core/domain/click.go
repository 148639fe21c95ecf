package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Attr is an optional categorical value of a click (country, browser, ...).
// Valid is false when the source had no value or a value that is not a string.
type Attr struct {
	String string
	Valid  bool
}

// Some returns a present value.
func Some(s string) Attr {
	return Attr{String: s, Valid: true}
}

// UnmarshalJSON accepts any JSON value. Only strings produce a valid Attr;
// numbers, booleans, objects, arrays and null leave it invalid without
// failing the surrounding record.
func (a *Attr) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		*a = Attr{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = Attr{String: s, Valid: true}
	return nil
}

func (a Attr) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.String)
}

// Scan implements sql.Scanner; NULL maps to an invalid Attr.
func (a *Attr) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Attr{}
	case string:
		*a = Attr{String: v, Valid: true}
	case []byte:
		*a = Attr{String: string(v), Valid: true}
	default:
		return fmt.Errorf("attr: unsupported scan type %T", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (a Attr) Value() (driver.Value, error) {
	if !a.Valid {
		return nil, nil
	}
	return a.String, nil
}

// ClickEvent is one recorded visit to a short link.
type ClickEvent struct {
	CreatedAt time.Time `json:"createdAt"`
	Continent Attr      `json:"continent"`
	Country   Attr      `json:"country"`
	State     Attr      `json:"state"`
	City      Attr      `json:"city"`
	Device    Attr      `json:"device"`
	Browser   Attr      `json:"browser"`
	OS        Attr      `json:"os"`
}
