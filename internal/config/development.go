package config

import "os"

const developmentEnv = "DEVELOPMENT"

// Development reports whether DEVELOPMENT is set to anything but "0" or
// "false".
func Development() bool {
	development, ok := os.LookupEnv(developmentEnv)
	if !ok {
		return false
	}
	return development != "0" && development != "false"
}
