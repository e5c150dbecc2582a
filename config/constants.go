package config

import "regexp"

const (
	DefaultTagName = "default"
	DotEnvFile     = ".env"
	DotEnvKVParts  = 2
)

// EnvPrefix namespaces every variable LoadInputConfig reads.
const EnvPrefix = "QUICK_INPUT"

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)
