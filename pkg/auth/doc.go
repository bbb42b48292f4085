// Package auth implements the authentication core: password hashing,
// access token issuance and validation, and the service orchestrating
// registration, login, and request authorization.
//
// # Components
//
// PasswordHasher: bcrypt hashing with per-call salts. Verification is a
// total predicate (bad input returns false, never an error) and
// normalizes the legacy $2y$ hash tag to $2b$ so old records stay
// verifiable.
//
// TokenService: HMAC-SHA-256 signed JWTs carrying sub, iat, and exp
// claims. Validity is purely signature + expiry; rotating the secret
// invalidates everything previously issued.
//
// Service: the gateway every endpoint goes through.
//
//	user, err := svc.Register(ctx, "alice", "alice@example.com", "s3cretpass")
//	token, exp, err := svc.Login(ctx, "alice", "s3cretpass")
//	user, err = svc.AuthorizeActive(ctx, token)
//
// # Errors
//
// Failures surface as typed errors (ConflictError,
// AuthenticationError, InactiveUserError, ForbiddenError,
// ValidationError) with IsXxx helpers; the HTTP boundary maps them to
// status codes. Login failures use one uniform message for both the
// unknown-user and wrong-password cases.
package auth
