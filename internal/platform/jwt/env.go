package jwtmw

// Environment variable names used by the JWT layer.
const (
	// EnvKeyJWTSecret holds the HMAC signing secret. The server refuses
	// authenticated requests when it is unset.
	EnvKeyJWTSecret = "JWT_SECRET"
)
