// Package version identifies the build in the screen header and in
// `shorty version`.
//
// Both variables can be set at link time, for example:
//
//	go build -ldflags "-X github.com/nils-degroot/shorty/internal/version.Version=v1.2.0" ./cmd/shorty
package version

// Name is the application name.
var Name = "shorty"

// Version is "dev" unless set with -ldflags.
var Version = "dev"

// Info returns Name and Version, falling back to the defaults when either
// was linked in empty.
func Info() (name, ver string) {
	name, ver = Name, Version
	if name == "" {
		name = "shorty"
	}
	if ver == "" {
		ver = "dev"
	}
	return name, ver
}

// String formats the build as "name version".
func String() string {
	name, ver := Info()
	return name + " " + ver
}
