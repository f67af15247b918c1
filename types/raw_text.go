package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// RawText is a JSON scalar kept exactly as it was written in the dataset.
// Depending on the release, fields like phone_code or latitude are published
// as strings or as bare numbers; both decode to the same source text.
type RawText struct {
	Text  string
	Valid bool // false for JSON null
}

func NewRawText(s string) RawText {
	return RawText{Text: s, Valid: true}
}

func (t *RawText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = RawText{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = RawText{Text: s, Valid: true}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*t = RawText{Text: n.String(), Valid: true}
	return nil
}

// Value sends the source text unchanged; the database casts it to the column type.
func (t RawText) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Text, nil
}

func (t *RawText) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = RawText{}
	case string:
		*t = NewRawText(v)
	case []byte:
		*t = NewRawText(string(v))
	case int64:
		*t = NewRawText(strconv.FormatInt(v, 10))
	case float64:
		*t = NewRawText(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("cannot scan %T into RawText", value)
	}
	return nil
}

func (t RawText) String() string {
	return t.Text
}
