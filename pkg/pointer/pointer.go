// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer holds the generic helpers behind PATCH-style updates.

Update requests carry every field as a pointer: nil leaves the stored value
alone, a non-nil pointer replaces it.
*/
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Assign copies *value into *target when value is non-nil.
// A nil value leaves target untouched; an empty string overwrites it.
func Assign[T any](target *T, value *T) {
	if value != nil {
		*target = *value
	}
}

// AssignOptional is [Assign] for optional (pointer) fields such as dates:
// when value is non-nil, target is replaced with a pointer to a copy of
// *value so the request and the entity never share memory.
func AssignOptional[T any](target **T, value *T) {
	if value != nil {
		copied := *value
		*target = &copied
	}
}
