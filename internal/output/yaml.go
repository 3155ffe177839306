package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlWriter writes results as YAML documents.
type yamlWriter struct {
	w   *bufio.Writer
	enc *yaml.Encoder
}

func newYAMLWriter(w io.Writer) *yamlWriter {
	bw := bufio.NewWriter(w)
	enc := yaml.NewEncoder(bw)
	enc.SetIndent(2)
	return &yamlWriter{w: bw, enc: enc}
}

// Write encodes a single result as a YAML document.
func (w *yamlWriter) Write(data any) error {
	return w.enc.Encode(data)
}

// Close closes the encoder and flushes the buffer.
func (w *yamlWriter) Close() error {
	if err := w.enc.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}
