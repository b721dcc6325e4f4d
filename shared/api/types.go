package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// IdParam accepts an id sent either as a JSON string or as a JSON number.
type IdParam string

func (p *IdParam) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = IdParam(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*p = IdParam(n.String())
	return nil
}

func (p IdParam) String() string {
	return string(p)
}
