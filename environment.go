package hackathons

import (
	"fmt"
	"strings"
)

// An Environment is a different context in which a hackathons app operates.
type Environment string

const (
	Demo        Environment = "DEMO"
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Review      Environment = "REVIEW"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

func (e Environment) String() string { return string(e) }

func (e Environment) Valid() error {
	switch e {
	case Demo, Development, Production, Review, Staging, Testing:
		return nil
	default:
		return ErrNotValid
	}
}

// UnmarshalText parses an Environment case-insensitively,
// returning ErrNotValid for unknown values.
//
// UnmarshalText implements [encoding.TextUnmarshaler]
// so an Environment can be read straight from configuration.
func (e *Environment) UnmarshalText(b []byte) error {
	env := Environment(strings.ToUpper(strings.TrimSpace(string(b))))
	if err := env.Valid(); err != nil {
		return fmt.Errorf("%w: environment %q", err, string(b))
	}

	*e = env
	return nil
}

// CanUseServiceStub asserts whether the Environment allows for setting up with stubbed out services,
// for those services that support stubbing.
func (e Environment) CanUseServiceStub() bool {
	switch e {
	case Demo, Development, Testing:
		return true
	default:
		return false
	}
}

func (e Environment) IsDevelopment() bool {
	return e == Development
}

func (e Environment) IsDemo() bool {
	return e == Demo
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) IsReview() bool {
	return e == Review
}

func (e Environment) IsStaging() bool {
	return e == Staging
}

func (e Environment) IsTesting() bool {
	return e == Testing
}
