/*
Package req provides ergonomics for handling an HTTP request.

Package req decodes JSON-encoded payloads and path parameters out of an HTTP request.
Payloads are passed on to the backend as-is;
the backend owns validation, so package req only checks that the payload is well-formed.

The errors that may propogate from decoding are translated to package req sentinel errors
in order to provide a consistent interface for handlers.
*/
package req
