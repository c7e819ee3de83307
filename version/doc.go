// Package version reports the eosarchive build version.
//
// Version, Commit and Date can be injected at build time:
//
//	-ldflags "-X github.com/dendrascience/eosarchive/version.Version=v1.0.0 -X github.com/dendrascience/eosarchive/version.Commit=abc1234"
//
// When they are left at their defaults the values recorded by the Go
// toolchain in the binary's build info (module version, vcs.revision,
// vcs.time) are used instead.
package version
