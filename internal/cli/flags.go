package cli

import "btp/internal/config"

// Flags holds command-line flags
type Flags struct {
	TestPath   string
	NameFilter string
	FailFast   bool
	OnlyFailed bool
	OpenFaills bool
	SkipProbe  bool
	ExtraArgs  []string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		TestPath:   f.TestPath,
		NameFilter: f.NameFilter,
		FailFast:   f.FailFast,
		OnlyFailed: f.OnlyFailed,
		OpenFaills: f.OpenFaills,
		SkipProbe:  f.SkipProbe,
		ExtraArgs:  f.ExtraArgs,
	}
}
