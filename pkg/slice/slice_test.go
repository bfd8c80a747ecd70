// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/pkg/slice"
)

/*
TestMap converts in order and encodes an empty input as [].
*/
func TestMap(t *testing.T) {
	assert.Equal(t, []string{"SOLO", "GROUP"}, slice.Map([]string{"solo", "group"}, strings.ToUpper))

	encoded, err := json.Marshal(slice.Map[string, string](nil, strings.ToUpper))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(encoded))
}
