package sepa_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factuurpro/factuur-api/internal/domain/sepa"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestEncode_ExactVector is the canary for the EPC069-12 contract: the payload
// must match byte for byte, including the three empty lines, or banking apps
// will reject the scanned QR. If anyone reorders fields, drops an empty line
// or puts a space between EUR and the amount, this test fails immediately.
// ──────────────────────────────────────────────────────────────────────────────

const testPayloadExpected = "BCD\n" +
	"002\n" +
	"1\n" +
	"SCT\n" +
	"INGBNL2A\n" +
	"Test B.V.\n" +
	"NL25INGB0109126122\n" +
	"EUR193.60\n" +
	"\n" +
	"\n" +
	"Invoice INV-001\n" +
	""

func buildTestData() *sepa.QRData {
	return &sepa.QRData{
		BIC:       "INGBNL2A",
		Name:      "Test B.V.",
		IBAN:      "NL25INGB0109126122",
		Amount:    decimal.NewFromFloat(193.60),
		Reference: "INV-001",
		Purpose:   "Invoice INV-001",
	}
}

func TestEncode_ExactVector(t *testing.T) {
	svc := sepa.NewEncoderService()

	payload, err := svc.Encode(buildTestData())
	require.NoError(t, err, "Encode must not fail for valid payment data")
	assert.Equal(t, testPayloadExpected, payload,
		"payload must match the EPC069-12 reference byte for byte")
}

func TestEncode_TwelveLinesWithEmptyFieldsPreserved(t *testing.T) {
	svc := sepa.NewEncoderService()

	payload, err := svc.Encode(buildTestData())
	require.NoError(t, err)

	lines := strings.Split(payload, "\n")
	require.Len(t, lines, 12, "the payload must have exactly 12 newline-joined fields")

	assert.Equal(t, "BCD", lines[0], "line 1 is the service tag")
	assert.Equal(t, "002", lines[1], "line 2 is the version")
	assert.Equal(t, "1", lines[2], "line 3 is the character set (UTF-8)")
	assert.Equal(t, "SCT", lines[3], "line 4 identifies a SEPA Credit Transfer")
	assert.Equal(t, "EUR193.60", lines[7], "line 8 is EUR directly followed by the amount, no space")
	assert.Empty(t, lines[8], "line 9 (purpose code) stays empty, not omitted")
	assert.Empty(t, lines[9], "line 10 (structured reference) stays empty, not omitted")
	assert.Equal(t, "Invoice INV-001", lines[10], "line 11 carries the remittance text")
	assert.Empty(t, lines[11], "line 12 (beneficiary info) stays empty, not omitted")
}

func TestEncode_NormalizesIBANAndBIC(t *testing.T) {
	svc := sepa.NewEncoderService()

	data := buildTestData()
	data.IBAN = " nl25 ingb 0109 1261 22 "
	data.BIC = " ingb nl2a "

	payload, err := svc.Encode(data)
	require.NoError(t, err)

	lines := strings.Split(payload, "\n")
	assert.Equal(t, "INGBNL2A", lines[4], "BIC is uppercased with whitespace stripped")
	assert.Equal(t, "NL25INGB0109126122", lines[6], "IBAN is uppercased with whitespace stripped")
}

func TestEncode_TruncatesOverlongFields(t *testing.T) {
	svc := sepa.NewEncoderService()

	data := buildTestData()
	data.BIC = "INGBNL2AXXXTRAILING"
	data.Name = strings.Repeat("N", 90)
	data.Purpose = strings.Repeat("P", 200)

	payload, err := svc.Encode(data)
	require.NoError(t, err)

	lines := strings.Split(payload, "\n")
	assert.Len(t, lines[4], 11, "BIC is cut to 11 characters")
	assert.Len(t, lines[5], 70, "name is cut to 70 characters")
	assert.Len(t, lines[10], 140, "remittance text is cut to 140 characters")
}

func TestEncode_RemittanceFallsBackToReference(t *testing.T) {
	svc := sepa.NewEncoderService()

	data := buildTestData()
	data.Purpose = "   "

	payload, err := svc.Encode(data)
	require.NoError(t, err)

	lines := strings.Split(payload, "\n")
	assert.Equal(t, "INV-001", lines[10],
		"an empty purpose falls back to the payment reference")
}

func TestEncode_EmptyBICAllowed(t *testing.T) {
	svc := sepa.NewEncoderService()

	data := buildTestData()
	data.BIC = ""

	payload, err := svc.Encode(data)
	require.NoError(t, err, "BIC is optional for intra-eurozone transfers")

	lines := strings.Split(payload, "\n")
	require.Len(t, lines, 12, "an empty BIC keeps its line")
	assert.Empty(t, lines[4])
}

func TestEncode_ForeignIBANAcceptedWithWarning(t *testing.T) {
	svc := sepa.NewEncoderService()

	data := buildTestData()
	data.IBAN = "DE89370400440532013000" // valid German IBAN, fails the Dutch shape

	payload, err := svc.Encode(data)
	require.NoError(t, err, "a non-Dutch IBAN is a warning, never a rejection")
	assert.Contains(t, payload, "DE89370400440532013000")
}

func TestEncode_ZeroAmount(t *testing.T) {
	svc := sepa.NewEncoderService()

	data := buildTestData()
	data.Amount = decimal.Zero

	payload, err := svc.Encode(data)
	require.NoError(t, err, "a zero amount is valid")
	assert.Equal(t, "EUR0.00", strings.Split(payload, "\n")[7])
}

func TestEncode_Deterministic(t *testing.T) {
	svc := sepa.NewEncoderService()

	p1, err1 := svc.Encode(buildTestData())
	p2, err2 := svc.Encode(buildTestData())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, p1, p2, "the same input must always produce a byte-identical payload")
}

// ── validation errors ─────────────────────────────────────────────────────────

func TestEncode_ErrorOnNilData(t *testing.T) {
	svc := sepa.NewEncoderService()
	_, err := svc.Encode(nil)
	assert.ErrorIs(t, err, sepa.ErrNilData)
}

func TestEncode_ErrorOnMissingName(t *testing.T) {
	svc := sepa.NewEncoderService()
	data := buildTestData()
	data.Name = "   "
	_, err := svc.Encode(data)
	assert.ErrorIs(t, err, sepa.ErrMissingName)
}

func TestEncode_ErrorOnMissingIBAN(t *testing.T) {
	svc := sepa.NewEncoderService()
	data := buildTestData()
	data.IBAN = ""
	_, err := svc.Encode(data)
	assert.ErrorIs(t, err, sepa.ErrMissingIBAN)
}

func TestEncode_ErrorOnNegativeAmount(t *testing.T) {
	svc := sepa.NewEncoderService()
	data := buildTestData()
	data.Amount = decimal.NewFromFloat(-0.01)
	_, err := svc.Encode(data)
	assert.ErrorIs(t, err, sepa.ErrNegativeAmount)
}
