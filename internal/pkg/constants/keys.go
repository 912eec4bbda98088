package constants

const (
	CookieKeyAuthToken   = "auth_token"
	CookieKeySecretToken = "secret_token"

	CtxKeyUserID = "user_id"

	ViperBindAddr      = "server.addr"
	ViperDatabaseDSN   = "database.dsn"
	ViperRetentionKeep = "retention.keep"
	ViperSecretKey     = "auth.secret"
	ViperCORSOrigin    = "server.cors_origin"
)
