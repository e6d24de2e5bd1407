// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// other packages that use string keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// OwnerCtxKey is the key under which the dev server stores the owner of the
// request (the bearer token it was authenticated with).
var OwnerCtxKey = contextKey("owner")

// WithOwner returns a copy of ctx carrying owner.
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, OwnerCtxKey, owner)
}

// GetOwnerFromContext retrieves the request owner; ok is false when the value
// is missing or has an unexpected type.
func GetOwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(OwnerCtxKey).(string)
	return owner, ok
}
