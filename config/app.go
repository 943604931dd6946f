package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName     string
	Port        string
	Env         string
	Debug       bool
	CatalogPath string
	StaticDir   string
	DefaultLang string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:     GetEnv("APP_NAME", "GoBazar"),
			Port:        os.Getenv("PORT"),
			Env:         os.Getenv("APP_ENV"),
			Debug:       os.Getenv("DEBUG") == "true",
			CatalogPath: GetEnv("CATALOG_PATH", "data.json"),
			StaticDir:   GetEnv("STATIC_DIR", "static"),
			DefaultLang: GetEnv("DEFAULT_LANG", "bn"),
		}
	})
}
