// Package myflix assembles the myFlix movie API.
//
// NewRouter wires the account and catalog modules behind the shared middleware
// stack: panic recovery, request ids, client ip resolution, access logging and
// Prometheus metrics. Login is throttled per client ip when a rate limiter is
// supplied.
//
//	router := myflix.NewRouter(myflix.Deps{
//		Auth:         authSvc,
//		Movies:       movie.NewCachedStore(movie.NewMongoStore(db), cacheCfg),
//		Logger:       log,
//		Metrics:      m,
//		LoginLimiter: bucket,
//	})
//	err := httpserver.NewFromConfig(httpCfg).Run(ctx, router)
//
// Routes:
//
//	GET    /                                   welcome text
//	POST   /login                              {user, token}
//	POST   /users                              register
//	GET    /users/{username}                   profile (owner only)
//	PUT    /users/{username}                   update (owner only)
//	DELETE /users/{username}                   delete (owner only)
//	POST   /users/{username}/favorites         add favorite (owner only)
//	DELETE /users/{username}/favorites/{id}    remove favorite (owner only)
//	GET    /movies, /movies/{title}            catalog (bearer token)
//	GET    /genres/{name}, /directors/{name}   catalog (bearer token)
//	GET    /health/live, /health/ready         probes
//	GET    /metrics                            Prometheus exposition
package myflix
