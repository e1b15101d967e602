package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// LoadEnv loads a .env file from the working directory or the project root
// into the process environment so InitializeConfig picks the values up
// through the PAIN001_* bindings. It runs at most once and stays silent when
// no file exists.
func LoadEnv() {
	loadEnvOnce.Do(func() {
		for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
			if _, err := os.Stat(envFile); err == nil {
				_ = godotenv.Load(envFile)
				return
			}
		}
	})
}
