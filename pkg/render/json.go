package render

import (
	"encoding/json"
	"io"
)

// WriteJSON writes f as indented JSON.
func WriteJSON(w io.Writer, f Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}
