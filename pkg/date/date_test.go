// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdikyarts/musicopedia/pkg/date"
)

type payload struct {
	BirthDate *date.Date `json:"birth_date"`
	DeathDate *date.Date `json:"death_date,omitempty"`
}

/*
TestDate_JSON covers decoding of present, null and malformed values.
*/
func TestDate_JSON(t *testing.T) {
	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"birth_date":"1993-05-16","death_date":null}`), &decoded))

	require.NotNil(t, decoded.BirthDate)
	assert.Equal(t, date.New(1993, time.May, 16), *decoded.BirthDate)
	assert.Nil(t, decoded.DeathDate)

	encoded, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"birth_date":"1993-05-16"}`, string(encoded))

	assert.Error(t, json.Unmarshal([]byte(`{"birth_date":"16/05/1993"}`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`{"birth_date":19930516}`), &decoded))
}

/*
TestDate_PointerHelpers checks round trips between domain times and DTO dates.
*/
func TestDate_PointerHelpers(t *testing.T) {
	assert.Nil(t, date.FromTime(nil))
	assert.Nil(t, date.ToTime(nil))

	moment := time.Date(2017, time.December, 18, 21, 30, 0, 0, time.FixedZone("KST", 9*3600))
	converted := date.FromTime(&moment)
	require.NotNil(t, converted)
	assert.Equal(t, "2017-12-18", converted.String())

	back := date.ToTime(converted)
	require.NotNil(t, back)
	assert.Equal(t, time.UTC, back.Location())
	assert.Equal(t, 0, back.Hour())
}
