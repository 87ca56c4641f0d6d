package models

import (
	"encoding/json"
	"fmt"
)

// Envelope is the wire form of a Candidate. Kind tells the consumer which
// payload shape Data carries.
type Envelope struct {
	Kind Category  `json:"kind"`
	Data Candidate `json:"data"`
}

// Wrap puts each candidate in an envelope, preserving order.
func Wrap(items []Candidate) []Envelope {
	out := make([]Envelope, 0, len(items))
	for _, item := range items {
		out = append(out, Envelope{Kind: item.Category(), Data: item})
	}
	return out
}

// UnmarshalJSON decodes Data according to Kind.
func (e *Envelope) UnmarshalJSON(b []byte) error {
	var raw struct {
		Kind Category        `json:"kind"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	c, err := DecodeCandidate(raw.Kind, raw.Data)
	if err != nil {
		return err
	}
	e.Kind = raw.Kind
	e.Data = c
	return nil
}

// DecodeCandidate unmarshals a JSON payload into the variant for category.
func DecodeCandidate(category Category, payload []byte) (Candidate, error) {
	var (
		c   Candidate
		err error
	)
	switch category {
	case CategoryJob:
		c, err = decodeAs[Job](payload)
	case CategoryCompany:
		c, err = decodeAs[Company](payload)
	case CategoryPost:
		c, err = decodeAs[Post](payload)
	case CategoryPerson:
		c, err = decodeAs[Person](payload)
	case CategoryService:
		c, err = decodeAs[Service](payload)
	case CategoryGroup:
		c, err = decodeAs[Group](payload)
	case CategoryEvent:
		c, err = decodeAs[Event](payload)
	case CategoryCourse:
		c, err = decodeAs[Course](payload)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", category, err)
	}
	return c, nil
}

func decodeAs[T Candidate](payload []byte) (Candidate, error) {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, err
	}
	return v, nil
}
