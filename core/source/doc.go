// Package source provides the client for the external catalog API.
//
// The API is an offset-paginated collection endpoint plus a per-record
// update endpoint:
//
//	GET /products?limit=N&skip=M  -> {products: [...], total: int}
//	PUT /products/{id}            -> echoes the updated record
//
// The HTTP implementation reuses one connection pool for all requests and
// transparently retries retryable statuses (429, 500, 502, 503, 504) with
// exponential backoff; callers only ever see the final outcome. Consumers
// depend on the Client interface so tests can substitute mocks.
package source
