package jwtx

import "errors"

var (
	// ErrVerification covers any structural or signature failure. Callers
	// must not surface which check failed.
	ErrVerification = errors.New("jwtx: token verification failed")

	// ErrExpired reports a token past its expiry or used before nbf.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrNoSecret reports a signer or verifier built without key material.
	ErrNoSecret = errors.New("jwtx: signing secret is empty")
)
