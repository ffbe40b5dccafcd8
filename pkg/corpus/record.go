package corpus

import "github.com/goccy/go-json"

// Record is one newline-delimited JSON article record. Only the text field
// matters here; anything else in the object is ignored.
type Record struct {
	Text string `json:"text"`
}

// parseRecord decodes one corpus line. A malformed line, or a record without
// a text field, returns ok=false and is treated as absence of data rather
// than an error.
func parseRecord(line []byte) (Record, bool) {
	var rec Record
	if err := json.Unmarshal(line, &rec); err != nil {
		return Record{}, false
	}
	if rec.Text == "" {
		return Record{}, false
	}
	return rec, true
}
