// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrNotAdvertisementOwner = errors.New("advertisement belongs to another user")
)

// reasons an Authorization header is rejected; all of them wrap ErrUnauthenticated
var (
	errNoAuthorizationHeader = errors.New("no `Authorization` header")
	errNotBasicScheme        = errors.New("`Authorization` header is not of Basic scheme")
	errInvalidBase64         = errors.New("credentials are not valid base64")
	errInvalidUTF8           = errors.New("credentials are not valid UTF-8")
	errNoCredentialSeparator = errors.New("credentials have no `:` separator")
	errEmptyLogin            = errors.New("empty login in credentials")
	errUnknownLogin          = errors.New("no user with such login")
	errWrongPassword         = errors.New("wrong password")
)
