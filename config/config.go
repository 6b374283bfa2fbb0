package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config returns the value of key from the process environment, after
// merging a .env file from the working directory on first use.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Debugf("no .env file loaded: %v", err)
		}
	})
	return strings.TrimSpace(os.Getenv(key))
}

func String(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}

func Int(key string, def int) int {
	v := Config(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("config %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}

func Bool(key string, def bool) bool {
	v := Config(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warnf("config %s=%q is not a boolean, using %t", key, v, def)
		return def
	}
	return b
}
