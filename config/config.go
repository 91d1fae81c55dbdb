package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// Config returns the value of key from .env (or the process environment).
func Config(key string) string {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file found, using process environment")
		}
	})
	return os.Getenv(key)
}
