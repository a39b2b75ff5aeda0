package toml

const currentSchemaVersion = 1

// stateSchema is the on-disk shape of the state file. Submission stamps are
// unix epoch milliseconds; sub-millisecond precision is not preserved.
type stateSchema struct {
	Version     int     `toml:"version"`
	Theme       string  `toml:"theme,omitempty"`
	Submissions []int64 `toml:"submissions,omitempty"`
}

func (s *stateSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}
