// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

package report

import "fmt"

// Capability is a bit set advertised by a Sink describing the result
// modes it accepts.
type Capability uint8

const (
	// CapMaterialize marks sinks able to accept a fully-computed row set
	// in one shot.
	CapMaterialize Capability = 1 << iota
)

// Sink consumes report rows. PutRow is called once per entry, in table
// order; returning an error aborts the stream.
type Sink interface {
	Capabilities() Capability
	PutRow(name, setting string) error
}

// ReportTo streams the full table into sink. The sink must advertise
// CapMaterialize; otherwise zero rows are emitted and the call fails with
// *UnsupportedContextError.
func (r *Reporter) ReportTo(sink Sink) error {
	if sink == nil || sink.Capabilities()&CapMaterialize == 0 {
		return ErrMaterializeNotSupported
	}

	for _, e := range r.Report() {
		if err := sink.PutRow(e.Name, e.Setting); err != nil {
			return fmt.Errorf("putting row %q: %w", e.Name, err)
		}
	}

	return nil
}

// ReportTo streams the table for execPath into sink using the flags baked
// into this binary.
func ReportTo(execPath string, sink Sink) error {
	return New(execPath).ReportTo(sink)
}
