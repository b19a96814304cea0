// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

package report

// UnsupportedContextError reports that the calling context cannot accept
// a materialized row set. It carries a SQLSTATE-style code alongside the
// message so host query layers can surface both.
type UnsupportedContextError struct {
	Code    string
	Message string
}

func (e *UnsupportedContextError) Error() string {
	return e.Message
}

// ErrMaterializeNotSupported is returned by ReportTo when the supplied
// sink does not advertise CapMaterialize. The code mirrors the SQL error
// class the original system view raised in this situation.
var ErrMaterializeNotSupported = &UnsupportedContextError{
	Code:    "42601",
	Message: "materialize mode required, but it is not allowed in this context",
}
