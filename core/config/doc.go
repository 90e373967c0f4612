// Package config provides type-safe environment variable loading with
// per-type caching. A .env file is loaded automatically on first use and
// parsing is handled by the caarlos0/env library.
//
// Basic usage:
//
//	import "github.com/wisdom2788/youthguard-go/core/config"
//
//	type ClientConfig struct {
//		BaseURL string        `env:"YOUTHGUARD_API_BASE_URL" envDefault:"http://localhost:5000/api"`
//		Timeout time.Duration `env:"YOUTHGUARD_API_TIMEOUT" envDefault:"15s"`
//	}
//
//	func main() {
//		var cfg ClientConfig
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//		// or panic on failure during startup:
//		config.MustLoad(&cfg)
//	}
//
// Each configuration type is loaded once per process lifetime; repeated
// loads of the same type return the cached value, so every component sees
// identical configuration regardless of load order.
package config
