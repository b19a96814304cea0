// Package http contains the chi-based HTTP handlers exposing the
// build-configuration report: the full table, by-name lookups, and the
// server version, plus the request logging and trace-ID middleware.
package http
