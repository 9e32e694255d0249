/*
Package hackathon caches what the backend last said about hackathons.

A [*Store] holds two slots: the collection from the last successful list
and the single Hackathon from the last successful view.
Each operation makes its network call through an [API] and, only on success,
replaces at most one slot wholesale.
A failed call leaves both slots as they were.

Creating a Hackathon refreshes the collection with a second call;
updating or deleting one does not, so the slots may show stale data
until the next list or view.

Concurrent operations are safe.
When two operations write the same slot, the one finishing last wins.
*/
package hackathon

//go:generate mockgen -destination=./mocks/api.go -package=mocks github.com/xy-planning-network/hackathons/hackathon API
