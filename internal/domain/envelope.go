package domain

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/envelope.json
var envelopeSchemaJSON string

var envelopeSchema = jsonschema.MustCompileString("envelope.json", envelopeSchemaJSON)

// Envelope is the outer object of a character listing response
type Envelope struct {
	Code   int           `json:"code"`
	Status string        `json:"status"`
	Data   DataContainer `json:"data"`
}

// DataContainer holds one page of results. The API sends it either as a bare
// array of records or as an object with paging counters and a results array.
type DataContainer struct {
	Offset  int         `json:"offset"`
	Limit   int         `json:"limit"`
	Total   int         `json:"total"`
	Count   int         `json:"count"`
	Results []Superhero `json:"results"`
}

// ValidateEnvelope checks a raw response body against the envelope schema
func ValidateEnvelope(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if err := envelopeSchema.Validate(doc); err != nil {
		return fmt.Errorf("envelope schema validation failed: %w", err)
	}
	return nil
}

func (e *Envelope) UnmarshalJSON(data []byte) error {
	if err := ValidateEnvelope(data); err != nil {
		return err
	}

	type plain Envelope
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Envelope(raw)
	return nil
}

func (d *DataContainer) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var results []Superhero
		if err := json.Unmarshal(trimmed, &results); err != nil {
			return err
		}
		*d = DataContainer{Count: len(results), Results: results}
		return nil
	}

	type plain DataContainer
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = DataContainer(raw)
	return nil
}

// Characters returns the page records behind the Character interface
func (e Envelope) Characters() []Character {
	out := make([]Character, 0, len(e.Data.Results))
	for _, hero := range e.Data.Results {
		out = append(out, hero)
	}
	return out
}
