package logstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed indicates persisted data that could not be decoded as a store.
var ErrMalformed = errors.New("malformed log store")

// Encode serializes the store as indented JSON with keys in date order.
func Encode(l Logs) ([]byte, error) {
	if l == nil {
		l = Logs{}
	}
	return json.MarshalIndent(l, "", "  ")
}

// Decode parses a serialized store. Empty input yields an empty store.
// Unknown fields are ignored and missing ones take their zero defaults;
// a log without a date takes the date of its key.
func Decode(data []byte) (Logs, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Logs{}, nil
	}
	var l Logs
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if l == nil {
		return Logs{}, nil
	}
	for key, log := range l {
		if log.Date != key {
			log.Date = key
			l[key] = log
		}
	}
	return l, nil
}
