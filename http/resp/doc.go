/*

The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides two main ways of responding to an HTTP request:
- rendering JSON data
- redirecting

*/
package resp
