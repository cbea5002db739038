// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin session tokens and password hashing.

# Session Tokens

Admin sessions use signed HS256 JWTs with a 12 hour TTL:

	token, err := auth.SignSessionToken(email, secret, time.Now())
	claims, err := auth.ParseSessionToken(token, secret)

Tokens are stateless: logout is handled client-side by dropping the
token, the server only verifies signatures and expiry. ParseSessionToken
returns ErrInvalidToken for anything expired, tampered, or signed with
the wrong method.

# Passwords

Admin passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

CheckPassword returns ErrInvalidCredentials on mismatch. Login handlers
return the same error for unknown emails so the two cases are
indistinguishable to a caller.
*/
package auth
