/*
Package nav declares the application's screens as an ordered table of routes
and decides, for each navigation, whether the requested screen may be shown.

# Table

A [Table] is built from [Descriptor] values with [NewTable].
A Descriptor pairs a path pattern with the view the renderer shows for it.
Segments beginning with ":" are parameters and bind whatever single, non-empty segment
appears in their place:

	/hackathons/:id  matches /hackathons/5 with id=5

[*Table.Resolve] finds the Descriptor a concrete path selects.
Every segment must match; static segments outrank parameters at the same position,
so /hackathons/create never resolves to /hackathons/:id.
Otherwise, the first Descriptor declared wins.

# Guard

A [Guard] inspects every Descriptor a [Resolution] matched.
When any requires authentication and the [auth.Session] is not authenticated,
the Guard redirects to the login route. The original target is dropped.

# Navigator

A [Navigator] walks a single client through navigations,
remembering the route it last committed:

	Requested -> Guarded -> Committed
	                     -> Redirected
*/
package nav
