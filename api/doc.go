// Package api is a client for the hackathons REST backend.
//
// A [*Client] speaks JSON, authenticating requests with a bearer token when given one.
// Failures to reach the backend return a [*NetworkError];
// responses outside the 2xx range return a [*ServerError].
// Neither is retried.
package api
