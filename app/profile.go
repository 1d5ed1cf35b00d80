package app

import (
	"fmt"

	"github.com/pkg/profile"
)

// StartProfile starts a cpu or mem profile writing into dir; an empty mode profiles
// nothing. The returned stop must run before the process exits or the profile is lost
func StartProfile(mode, dir string) (stop func(), err error) {
	var kind func(*profile.Profile)
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfile
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
	return profile.Start(kind, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook).Stop, nil
}
