package chart

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fretlog/fretlog/internal/wire"
)

// CreateInput is the canonical shape a new chart is built from. Three legacy
// record shapes feed into it (see ClassifyInput); all are converted here, at
// the boundary, so the repository only ever sees this one shape.
type CreateInput struct {
	Title   string
	Payload Payload
	// Order is the explicit per-record order value, when the caller supplied
	// one. Nil means "use the record's position in the batch".
	Order *int
}

// NewFlattenedInput builds a CreateInput from the editor's flattened record
// shape: payload fields hoisted next to the chart metadata.
func NewFlattenedInput(rec map[string]any) (CreateInput, error) {
	payload, err := payloadFromValue(rec)
	if err != nil {
		return CreateInput{}, fmt.Errorf("flattened chart record: %w", err)
	}
	title, _ := rec["title"].(string)
	return CreateInput{
		Title:   title,
		Payload: payload.Normalize(),
		Order:   optionalInt(rec["order"]),
	}, nil
}

// NewNestedInput builds a CreateInput from the record shape carrying the
// payload under a nested chord_data key.
func NewNestedInput(rec map[string]any) (CreateInput, error) {
	payload, err := payloadFromValue(rec["chord_data"])
	if err != nil {
		return CreateInput{}, fmt.Errorf("nested chart record: %w", err)
	}
	title, _ := rec["title"].(string)
	return CreateInput{
		Title:   title,
		Payload: payload.Normalize(),
		Order:   optionalInt(rec["order"]),
	}, nil
}

// NewColumnInput builds a CreateInput from the column-letter record shape
// (C=title, D=payload, F=order).
func NewColumnInput(rec wire.Record) (CreateInput, error) {
	payload, err := payloadFromValue(rec["D"])
	if err != nil {
		return CreateInput{}, fmt.Errorf("column chart record: %w", err)
	}
	return CreateInput{
		Title:   rec.String("C"),
		Payload: payload.Normalize(),
		Order:   optionalInt(rec["F"]),
	}, nil
}

// ClassifyInput converts one heterogeneous batch record into the canonical
// input shape. Classification order matters: the flattened shape wins over
// the nested one when a record could be read as either, because newer
// callers emit the flattened shape. Records matching neither are read as
// column-letter records.
func ClassifyInput(rec map[string]any) (CreateInput, error) {
	_, hasTitle := rec["title"]
	if _, ok := rec["fingers"]; ok && hasTitle {
		return NewFlattenedInput(rec)
	}
	if _, ok := rec["chord_data"]; ok && hasTitle {
		return NewNestedInput(rec)
	}
	return NewColumnInput(wire.Record(rec))
}

// payloadFromValue decodes an arbitrary JSON-shaped value into a Payload.
func payloadFromValue(v any) (Payload, error) {
	if v == nil {
		return Payload{}, nil
	}
	if p, ok := v.(Payload); ok {
		return p, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return Payload{}, fmt.Errorf("encode payload value: %w", err)
	}
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("decode payload value: %w", err)
	}
	return p, nil
}

// optionalInt reads an optional numeric value that may arrive as a JSON
// number, an int, or a numeric string. Empty and unparsable values count as
// absent.
func optionalInt(v any) *int {
	switch n := v.(type) {
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	case string:
		if n == "" {
			return nil
		}
		i, err := strconv.Atoi(n)
		if err != nil {
			return nil
		}
		return &i
	default:
		return nil
	}
}
