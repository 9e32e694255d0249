/*
Package session manages the sessions of clients of the web front.

A [Service] stores sessions in cookies or, with [WithRedis], in Redis.
Each [Session] carries the backend's token for a logged in client
and an ID keying the client's cached hackathon data.
*/
package session
