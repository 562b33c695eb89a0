// Package environment names the deployment environments formkit runs in and
// parses them from configuration values such as APP_ENV.
//
//	env := environment.Parse(cfg.AppEnv)
//	if env.IsProduction() {
//	    // JSON logs, info level
//	}
package environment
