// Package rest exposes the toolkit operations as JSON endpoints on a
// chi router, with CORS and per-IP rate limiting. Request field names
// match the MCP tool argument names, so clients can switch transports
// without remapping payloads.
package rest
