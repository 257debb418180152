// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the lowercase hex MD5 digest of password.
//
// The digest is unsalted and always 32 characters long, which is the format
// stored in the pwd_hash column of existing databases.
func HashPassword(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// PasswordMatches reports whether password hashes to storedHash.
// The comparison runs in constant time.
func PasswordMatches(password, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(storedHash)) == 1
}
