package config

const (
	EnvPrefix = "EVENTRAVE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "EVENTRAVE_APP_ENV"
	EnvPort   = "EVENTRAVE_APP_PORT"

	EnvDBDSN  = "EVENTRAVE_DB_DSN"
	EnvDBHost = "EVENTRAVE_DB_HOST"
	EnvDBUser = "EVENTRAVE_DB_USER"
	EnvDBName = "EVENTRAVE_DB_NAME"

	EnvRedisURL = "EVENTRAVE_REDIS_URL"
)

var componentDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
