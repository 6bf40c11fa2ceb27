package factory

import jsoniter "github.com/json-iterator/go"

// Report is a snapshot of a factory.
type Report struct {
	Name    string `json:"name"`
	Lines   int    `json:"lines"`
	Stock   int    `json:"stock"`
	Batches int    `json:"batches"`
}

// Report returns a snapshot of f.
func (f *Factory[P]) Report() Report {
	return Report{Name: f.Name(), Lines: len(f.lines), Stock: len(f.warehouse), Batches: f.batches}
}

// JSON encodes r.
func (r Report) JSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(r)
}
