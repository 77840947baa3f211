package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/pocketchess/internal/config"
)

// AnalysisWriter is the interface for writing analyses to output.
type AnalysisWriter interface {
	// WriteAnalysis writes a single analysis.
	WriteAnalysis(a *Analysis) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes and releases any resources.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output. JSON output is
// batched into a single document unless JSONStream is set.
func NewWriter(w io.Writer, cfg *config.Config) AnalysisWriter {
	switch {
	case cfg.Output.JSONFormat && cfg.Output.JSONStream:
		return NewJSONWriterSingle(w, cfg)
	case cfg.Output.JSONFormat:
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes analyses as tag blocks.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteAnalysis writes an analysis immediately.
func (tw *TextWriter) WriteAnalysis(a *Analysis) error {
	ew := &errWriter{w: tw.w}
	OutputAnalysis(a, tw.cfg, ew)
	return ew.err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (tw *TextWriter) Close() error {
	return nil
}

// errWriter remembers the first write error so formatting code can
// use fmt.Fprint without checking every call.
type errWriter struct {
	w   io.Writer
	err error
}

func (c *errWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.err = err
	return n, err
}

// JSONWriter writes analyses in JSON format. It buffers analyses and
// writes them as one document on Flush or Close.
type JSONWriter struct {
	w         io.Writer
	cfg       *config.Config
	positions []*JSONAnalysis
	single    bool // If true, write each analysis immediately instead of batching
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:         w,
		cfg:       cfg,
		positions: make([]*JSONAnalysis, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes one object per
// analysis as it arrives.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteAnalysis buffers an analysis (or writes it immediately in single mode).
func (jw *JSONWriter) WriteAnalysis(a *Analysis) error {
	ja := AnalysisToJSON(a, jw.cfg)
	if jw.single {
		return jw.encode(ja)
	}
	jw.positions = append(jw.positions, ja)
	return nil
}

// Flush writes all buffered analyses as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Positions: jw.positions})
	jw.positions = jw.positions[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
