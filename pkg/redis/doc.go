// Package redis connects to Redis with retries and exposes a readiness check.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	r.Get("/health/ready", httpserver.HealthCheckHandler(log, redis.Healthcheck(client)))
//
// Config is populated from REDIS_* environment variables with pkg/config.
// The formrules service uses it as the shared backend of the submission rate
// limiter when REDIS_URL is set.
package redis
