// Package utils provides shared low-level helpers used throughout the
// voyagent internals. It covers generic HTTP request helpers for synchronous
// JSON round-trips with external APIs, string truncation for log output, and
// repair-tolerant string-to-type parsing.
//
// Key entry points: [DoPostSync] and [DoGetSync] for JSON round-trips,
// [ParseStringAs] for decoding model-supplied content into typed values, and
// [TruncateString] for bounding log payloads.
package utils
