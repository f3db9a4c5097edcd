// Package redis connects to Redis with retries and exposes a health check.
//
//	cfg := config.MustLoad[redis.Config]()
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer client.Close()
//		server.AddReadinessCheck(redis.Healthcheck(client))
//	}
//
// The returned client is a plain *github.com/redis/go-redis/v9.Client.
package redis
