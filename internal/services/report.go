package services

import (
	"encoding/json"
)

// Result is the outcome of transforming one record file. Err is nil on success.
type Result struct {
	File  string
	Added []string
	Err   error
}

// OK reports whether the record was transformed and written back.
func (r Result) OK() bool {
	return r.Err == nil
}

// MarshalJSON renders Err as its message.
func (r Result) MarshalJSON() ([]byte, error) {
	view := struct {
		File  string   `json:"file"`
		Added []string `json:"added,omitempty"`
		Error string   `json:"error,omitempty"`
	}{File: r.File, Added: r.Added}
	if r.Err != nil {
		view.Error = r.Err.Error()
	}
	return json.Marshal(view)
}

// Report aggregates the results of one walk over a directory.
type Report struct {
	RunID   string   `json:"run_id"`
	Dir     string   `json:"dir"`
	Results []Result `json:"results"`
}

// Processed returns the number of records written back successfully.
func (r *Report) Processed() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of records that could not be processed.
func (r *Report) Failed() int {
	return len(r.Results) - r.Processed()
}

// Failures returns the failed results in processing order.
func (r *Report) Failures() []Result {
	var failures []Result
	for _, res := range r.Results {
		if !res.OK() {
			failures = append(failures, res)
		}
	}
	return failures
}
