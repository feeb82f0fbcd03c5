// Package protocol defines the request/response message types processed by
// pipeline endpoints, along with error codes and request-scoped data helpers.
//
// This package provides the low-level structures used by pipeline-go.
// Most users should use the higher-level pipeline package instead.
//
// # Request and Response Types
//
// The package defines JSON-RPC 2.0 flavored message types carrying
// transport-agnostic headers:
//
//	type Request struct {
//	    JSONRPC string          `json:"jsonrpc"`
//	    ID      json.RawMessage `json:"id,omitempty"`
//	    Method  string          `json:"method"`
//	    Params  json.RawMessage `json:"params,omitempty"`
//	    Header  Header          `json:"header,omitempty"`
//	}
//
//	type Response struct {
//	    JSONRPC string          `json:"jsonrpc"`
//	    ID      json.RawMessage `json:"id,omitempty"`
//	    Result  any             `json:"result,omitempty"`
//	    Error   *Error          `json:"error,omitempty"`
//	    Header  Header          `json:"header,omitempty"`
//	}
//
// Headers are the surface that header-manipulating middleware (SetHeader,
// PropagateHeader, SensitiveHeader) operates on; they are message metadata,
// not part of any wire format defined here.
//
// # Error Codes
//
// Standard JSON-RPC 2.0 error codes are defined as constants:
//
//	CodeParseError     = -32700  // Invalid JSON
//	CodeInvalidRequest = -32600  // Invalid Request object
//	CodeMethodNotFound = -32601  // Method not found
//	CodeInvalidParams  = -32602  // Invalid method parameters
//	CodeInternalError  = -32603  // Internal server error
//
// Helper functions create properly formatted errors:
//
//	err := protocol.NewInternalError("panic: index out of range")
//	err := protocol.NewInvalidParams("missing required field: name")
//
// # Request-Scoped Data
//
// Middleware that needs per-request state stores it in the request context,
// never in the middleware value itself:
//
//	ctx = protocol.ContextWithData(ctx, "tenant", tenant)
//	tenant, ok := protocol.DataFromContext(ctx, "tenant")
package protocol
