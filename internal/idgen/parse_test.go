package idgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veloralabs/agencydesk/internal/types"
)

func TestParseClientID(t *testing.T) {
	parts := ParseClientID("EA701-IND-253")
	require.NotNil(t, parts)
	assert.Equal(t, types.ProjectCodeEnterprise, parts.ProjectCode)
	assert.Equal(t, types.PlatformCodeApp, parts.PlatformCode)
	assert.Equal(t, 1, parts.SequenceNumber)
	assert.Equal(t, "IND", parts.CountryCode)
	assert.Equal(t, 25, parts.Year)
	assert.Equal(t, time.March, parts.Month)

	parts = ParseClientID("SW742-USA-24C")
	require.NotNil(t, parts)
	assert.Equal(t, types.ProjectCodeStartup, parts.ProjectCode)
	assert.Equal(t, types.PlatformCodeWeb, parts.PlatformCode)
	assert.Equal(t, 42, parts.SequenceNumber)
	assert.Equal(t, "USA", parts.CountryCode)
	assert.Equal(t, 24, parts.Year)
	assert.Equal(t, time.December, parts.Month)
}

func TestParseClientIDInvalid(t *testing.T) {
	invalid := []string{
		"",
		"EA701-IND",          // missing date segment
		"ea701-ind-253",      // lowercase
		"XA701-IND-253",      // unknown project code
		"EX701-IND-253",      // unknown platform code
		"EA801-IND-253",      // wrong separator digit
		"EA7001-IND-253",     // three-digit sequence
		"EA71-IND-253",       // one-digit sequence
		"EA701-IN-253",       // two-letter country
		"EA701-INDI-253",     // four-letter country
		"EA701-IND-25D",      // month beyond hex C
		"EA701-IND-253-0001", // trailing segment
		" EA701-IND-253",     // leading space
	}

	for _, s := range invalid {
		assert.Nil(t, ParseClientID(s), "expected no parse for %q", s)
		assert.False(t, IsValidClientID(s), "expected invalid for %q", s)
	}
}

func TestIsValidClientID(t *testing.T) {
	assert.True(t, IsValidClientID("EA701-IND-253"))
	assert.True(t, IsValidClientID("PH799-GBR-990"))
	assert.False(t, IsValidClientID("QN1-EA701-001"))
}

func TestBaseClientID(t *testing.T) {
	assert.Equal(t, "EA701", BaseClientID("EA701-IND-253"))
	assert.Equal(t, "EA701", BaseClientID("EA701"))
	assert.Equal(t, "", BaseClientID(""))
	assert.Equal(t, "SW742", BaseClientID("SW742-USA-24C"))
}
