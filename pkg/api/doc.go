// Package api serves the permutation engine over HTTP.
//
// # Endpoints
//
//	GET  /healthz            liveness probe
//	POST /v1/analyze         {"table": [..], "normalize": true, "formats": ["dot"]}
//	POST /v1/compose         {"a": [..], "b": [..]}  → {"table": [..]}  (a after b)
//	POST /v1/invert          {"table": [..]}          → {"table": [..]}
//	POST /v1/conjugate       {"a": [..], "b": [..]}  → {"conjugate": bool, ...}
//	GET  /v1/classes/{n}     conjugacy classes of S_n
//
// Every response carries an X-Request-ID header. A request ID supplied by
// the client is echoed back; otherwise a random UUID is generated.
//
// # Errors
//
// Failures are reported as {"code": "...", "message": "..."} using the codes
// of package errors. Rejected input maps to 400 Bad Request, everything else
// to 500. Tables are validated before they reach package perm, so no request
// can trigger a panic in the core.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, cache.NewScopedKeyer(nil, "api:"), logger)
//	srv := api.New(runner, logger)
//	http.ListenAndServe(":8080", srv.Handler())
package api
