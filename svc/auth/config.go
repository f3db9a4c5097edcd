package auth

import "time"

// Config holds the token and password hashing settings.
type Config struct {
	// JWTSecret signs tokens. At least 32 bytes; there is no default.
	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL     time.Duration `env:"JWT_TTL" envDefault:"1h"`
	JWTIssuer  string        `env:"JWT_ISSUER" envDefault:"myflix"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}
