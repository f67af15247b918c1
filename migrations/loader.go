package migrations

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"locationseed/types"
	"os"
	"unicode/utf8"
)

type SourceCity struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Latitude  types.RawText `json:"latitude"`
	Longitude types.RawText `json:"longitude"`
}

type SourceState struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	StateCode types.RawText `json:"state_code"`
	Cities    []SourceCity  `json:"cities"`
}

type SourceCountry struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Iso3      string        `json:"iso3"`
	Iso2      string        `json:"iso2"`
	PhoneCode types.RawText `json:"phone_code"`
	States    []SourceState `json:"states"`
}

type document struct {
	Countries *[]SourceCountry `json:"countries"`
}

var (
	ErrNotAnArray  = errors.New("dataset top level is not an array")
	ErrInvalidUTF8 = errors.New("dataset is not valid UTF-8")
)

// LoadCountries reads the whole countries+states+cities file into memory.
func LoadCountries(path string) ([]SourceCountry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	countries, err := DecodeCountries(file)
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return countries, nil
}

// DecodeCountries wraps the bare array published by the dataset under a
// "countries" key and decodes the result.
func DecodeCountries(r io.Reader) ([]SourceCountry, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	// encoding/json would replace bad bytes with U+FFFD and store altered names
	if !utf8.Valid(content) {
		return nil, ErrInvalidUTF8
	}

	wrapped := make([]byte, 0, len(content)+18)
	wrapped = append(wrapped, "{\n\"countries\": "...)
	wrapped = append(wrapped, content...)
	wrapped = append(wrapped, "\n}"...)

	var doc document
	if err := json.Unmarshal(wrapped, &doc); err != nil {
		return nil, err
	}
	if doc.Countries == nil {
		return nil, ErrNotAnArray
	}
	return *doc.Countries, nil
}
