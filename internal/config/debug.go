package config

import "os"

func IsDebug() bool {
	return os.Getenv("ANYA_DEBUG") == "1"
}
