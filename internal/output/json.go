package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// jsonWriter writes results as pretty-printed JSON documents, or as
// newline-delimited JSON when pretty is disabled (JSONL).
type jsonWriter struct {
	w      *bufio.Writer
	pretty bool
}

func newJSONWriter(w io.Writer, pretty bool) *jsonWriter {
	return &jsonWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
	}
}

// Write encodes a single result as one JSON document.
func (w *jsonWriter) Write(data any) error {
	var out []byte
	var err error
	if w.pretty {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return nil
}

// Close flushes the buffer.
func (w *jsonWriter) Close() error {
	return w.w.Flush()
}
