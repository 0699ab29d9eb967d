// Package dto defines data transfer objects for the vnstock bridge responses.
package dto

import "encoding/json"

// SplitTable is a dataset serialized with pandas DataFrame.to_json(orient="split").
// Cells are kept raw because the bridge emits numbers, numeric strings and nulls.
type SplitTable struct {
	Columns []string            `json:"columns"`
	Index   []json.RawMessage   `json:"index,omitempty"`
	Data    [][]json.RawMessage `json:"data"`
}

// ErrorBody is the JSON body the bridge sends along with a 4xx/5xx status.
// Detail is raw since FastAPI validation errors send a list there.
type ErrorBody struct {
	Error  string          `json:"error,omitempty"`
	Detail json.RawMessage `json:"detail,omitempty"`
}
