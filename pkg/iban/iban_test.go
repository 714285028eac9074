package iban_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/factuurpro/factuur-api/pkg/iban"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "NL25INGB0109126122", iban.Normalize(" nl25 ingb 0109 1261 22 "))
	assert.Equal(t, "NL25INGB0109126122", iban.Normalize("NL25INGB0109126122"))
	assert.Equal(t, "", iban.Normalize("   "))
}

func TestMatchesDutchFormat(t *testing.T) {
	assert.True(t, iban.MatchesDutchFormat("NL25INGB0109126122"))
	assert.True(t, iban.MatchesDutchFormat("NL91ABNA0417164300"))
	assert.False(t, iban.MatchesDutchFormat("DE89370400440532013000"), "German shape differs")
	assert.False(t, iban.MatchesDutchFormat("NL25INGB010912612"), "one digit short")
	assert.False(t, iban.MatchesDutchFormat("nl25ingb0109126122"), "callers normalize first")
}

func TestValidateChecksum(t *testing.T) {
	assert.NoError(t, iban.ValidateChecksum("NL25INGB0109126122"))
	assert.NoError(t, iban.ValidateChecksum("NL91ABNA0417164300"))
	assert.NoError(t, iban.ValidateChecksum("DE89370400440532013000"),
		"mod-97 works for any country")

	assert.Error(t, iban.ValidateChecksum("NL02RABO0123456789"), "wrong check digits")
	assert.Error(t, iban.ValidateChecksum("NL25"), "too short")
	assert.Error(t, iban.ValidateChecksum("NL25INGB_109126122"), "invalid character")
}
