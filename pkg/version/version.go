package version

import "fmt"

// Version of create-agentverse-agent
const (
	Major = 0
	Minor = 1
	Patch = 0
)

type Version struct {
	Major int
	Minor int
	Patch int
}

func Current() Version {
	return Version{
		Major: Major,
		Minor: Minor,
		Patch: Patch,
	}
}

// String gives you the string representation of the current version
func String() string {
	return Current().String()
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
