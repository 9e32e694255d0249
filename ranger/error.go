package ranger

import "github.com/xy-planning-network/hackathons"

// Ranger reports with the root package's sentinels,
// so callers can check either.
var (
	ErrBadConfig = hackathons.ErrBadConfig
	ErrNotValid  = hackathons.ErrNotValid
)
