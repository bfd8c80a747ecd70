// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/pkg/convert"
)

/*
TestToBoolPtr separates absent, valid and malformed values.
*/
func TestToBoolPtr(t *testing.T) {
	value, err := convert.ToBoolPtr("")
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = convert.ToBoolPtr("true")
	require.NoError(t, err)
	assert.True(t, *value)

	value, err = convert.ToBoolPtr("0")
	require.NoError(t, err)
	assert.False(t, *value)

	_, err = convert.ToBoolPtr("maybe")
	assert.Error(t, err)
}

/*
TestToDatePtr separates absent, valid and malformed dates.
*/
func TestToDatePtr(t *testing.T) {
	value, err := convert.ToDatePtr("")
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = convert.ToDatePtr("2009-08-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2009, time.August, 5, 0, 0, 0, 0, time.UTC), *value)

	_, err = convert.ToDatePtr("2009-13-40")
	assert.Error(t, err)
}
