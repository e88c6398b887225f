// Package misc keeps build time information.
package misc

// Set with -ldflags "-X entc/misc.version=... -X entc/misc.githash=..." at build time.
var (
	version = "dev"
	githash = "unknown"
)

const appName = "entc"

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return githash
}

func GetAppName() string {
	return appName
}
