/*
Package handler answers the HTTP front's requests.

Navigation requests are answered with the view a route selects, as JSON;
rendering it is left to the client.

API requests drive the *hackathon.Store of the requesting session,
which middleware.InjectStore places in the request's context,
and answer with what the store has cached afterwards.
*/
package handler
