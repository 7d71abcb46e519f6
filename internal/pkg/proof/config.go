package proof

// Config carries the proof pass's one configuration flag (spec §6).
type Config struct {
	// RequireDecoratedFinalValue selects how `return e;` is translated
	// (spec §4.3/§6). When true, only `(return^' = e)` is asserted. When
	// false, both `(return^' = e)` and `(return = e)` are asserted so a
	// means-statement may refer to either name.
	//
	// spec §6 leaves the default unspecified ("the implementer chooses one
	// and documents it"); this implementation defaults to false, mirroring
	// the looser, more permissive reading — existing claims written against
	// undecorated `return` keep working after the decorated form is
	// introduced, rather than breaking on upgrade.
	RequireDecoratedFinalValue bool
}

// DefaultConfig is the documented default of RequireDecoratedFinalValue.
func DefaultConfig() Config {
	return Config{RequireDecoratedFinalValue: false}
}
