// Package redis provides a Redis-backed credential keyring with connection
// validation and retry logic.
//
// It wraps the go-redis client with URL validation, linear backoff retries,
// and a ping verification before the client is handed out, then exposes the
// stored-credential contract of core/keyring on top of it. Use it when
// sessions must survive process restarts and be shared across instances,
// for example a fleet of workers acting on behalf of one service account.
//
// # Configuration
//
// Connection settings come from the environment:
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//		ScanBatchSize  int           `env:"REDIS_SCAN_BATCH_SIZE" envDefault:"1000"`
//	}
//
// Both redis:// and rediss:// (TLS) URL schemes are accepted.
//
// # Usage Example
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	ring := redis.NewKeyring(client, redis.WithKeyPrefix("youthguard:worker-1:"))
//	gw := gateway.MustNew(gwCfg, gateway.WithCredentials(ring))
//
// Entries are written under a shared key prefix; Clear removes only the
// prefixed keys using batched SCAN, never the whole database.
//
// # Error Handling
//
// Connection errors wrap stable sentinels checkable with errors.Is():
// ErrEmptyConnectionURL, ErrFailedToParseRedisConnString, ErrRedisNotReady,
// and ErrHealthcheckFailed. Keyring reads map missing entries to
// keyring.ErrKeyNotFound so session-layer handling stays backend-agnostic.
package redis
