package config

const (
	EnvPrefix = "STOREFRONT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv      = "STOREFRONT_APP_ENV"
	EnvPort        = "STOREFRONT_APP_PORT"
	EnvCORSOrigins = "STOREFRONT_CORS_ALLOWED_ORIGINS"

	EnvDBDSN      = "STOREFRONT_DB_DSN"
	EnvDBHost     = "STOREFRONT_DB_HOST"
	EnvDBUser     = "STOREFRONT_DB_USER"
	EnvDBPassword = "STOREFRONT_DB_PASSWORD"
	EnvDBName     = "STOREFRONT_DB_NAME"

	EnvRedisURL = "STOREFRONT_REDIS_URL"

	EnvJWTSecret       = "STOREFRONT_JWT_SECRET"
	EnvJWTIssuer       = "STOREFRONT_JWT_ISSUER"
	EnvJWTAccessTTL    = "STOREFRONT_JWT_ACCESS_TTL"
	EnvRefreshTokenTTL = "STOREFRONT_REFRESH_TOKEN_TTL"

	EnvArgonMemory = "STOREFRONT_ARGON_MEMORY_KB"
	EnvArgonTime   = "STOREFRONT_ARGON_TIME"

	EnvAutoMigrate = "STOREFRONT_AUTO_MIGRATE"
)
