// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sdikyarts/musicopedia/pkg/pointer"
)

/*
TestAssign leaves the target alone for nil and overwrites otherwise.
*/
func TestAssign(t *testing.T) {
	name := "BTS"

	pointer.Assign(&name, nil)
	assert.Equal(t, "BTS", name)

	pointer.Assign(&name, pointer.To(""))
	assert.Empty(t, name)
}

/*
TestAssignOptional stores a copy, never the caller's pointer.
*/
func TestAssignOptional(t *testing.T) {
	var target *time.Time
	pointer.AssignOptional(&target, nil)
	assert.Nil(t, target)

	value := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	source := &value
	pointer.AssignOptional(&target, source)

	if assert.NotNil(t, target) {
		assert.Equal(t, value, *target)
		assert.NotSame(t, source, target)
	}
}
