// Package jwt issues and verifies the bearer tokens handed out at login.
//
// Tokens are HS256-signed JWTs carrying only the registered claims sub, iss,
// iat and exp. Every token gets the same lifetime (WithTTL, one hour by
// default). Signing and parsing are delegated to github.com/golang-jwt/jwt/v5;
// parsing pins the algorithm to HS256 so "none" or asymmetric headers are
// rejected.
//
//	svc, err := jwt.New(secret, jwt.WithTTL(time.Hour), jwt.WithIssuer("myflix"))
//	token, err := svc.Issue(userID)
//	claims, err := svc.Parse(token)
package jwt
