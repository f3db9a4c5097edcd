// Package mongo manages the MongoDB connection: environment-driven Config,
// a connect-with-retry constructor, a readiness probe and small helpers for
// classifying driver errors.
//
//	cfg := config.MustLoad[mongo.Config]()
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(context.Background())
//
//	db := client.Database(cfg.Database)
//	server.AddReadinessCheck(mongo.Healthcheck(client))
//
// Stores use IsDuplicateKey and IsNotFound to translate driver errors into
// their own sentinels.
package mongo
