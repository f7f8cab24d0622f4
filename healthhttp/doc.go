// Package healthhttp serves the health verdicts through a chi router.
//
// Probe routes (GET /<ready path> and GET /<alive path>) are always open so
// orchestrators can reach them. The JSON detail routes (/<path>/details)
// list every member check with its error text and can be protected with a
// bearer JWT:
//
//	api := healthhttp.NewAPI(agg)
//	api.Authenticator = healthhttp.NewJWTAuthenticator(healthhttp.JWTConfig{
//	    Issuer: "ops",
//	}, healthhttp.NewStaticKeyProvider(key))
//	api.Metrics = healthhttp.NewProbeMetrics()
//
//	srv := &http.Server{Addr: ":8558", Handler: api.Handler()}
package healthhttp
