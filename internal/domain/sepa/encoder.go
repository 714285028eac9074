// Package sepa encodes SEPA Credit Transfer payment data as the EPC069-12
// "BCD" QR payload. The payload is the string a banking app scans: exactly
// twelve newline-joined fields in a fixed order, with unused fields kept as
// empty lines. An external library turns the string into the QR image.
package sepa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/factuurpro/factuur-api/pkg/iban"
)

// EPC069-12 header fields, fixed for every SEPA Credit Transfer payload.
const (
	ServiceTag     = "BCD"
	Version        = "002"
	CharacterSet   = "1" // UTF-8
	Identification = "SCT"
)

// Field length limits from the EPC069-12 data set.
const (
	maxBICLength        = 11
	maxNameLength       = 70
	maxRemittanceLength = 140
)

// Validation errors. An unusable payload is rejected; everything else is a
// logged warning.
var (
	ErrNilData        = errors.New("sepa: payment data is required")
	ErrMissingName    = errors.New("sepa: beneficiary name is required")
	ErrMissingIBAN    = errors.New("sepa: beneficiary IBAN is required")
	ErrNegativeAmount = errors.New("sepa: amount must not be negative")
)

// QRData is the input for one payment payload. Normalization (uppercasing,
// whitespace stripping, truncation) happens inside Encode, before the fields
// are assembled.
type QRData struct {
	BIC       string          // optional for intra-eurozone transfers
	Name      string          // beneficiary, max 70 characters
	IBAN      string          // beneficiary account
	Amount    decimal.Decimal // EUR
	Reference string          // payment reference, e.g. the invoice number
	Purpose   string          // free-text payment purpose
}

// EncoderService builds EPC069-12 payloads.
type EncoderService struct {
	log zerolog.Logger
}

// NewEncoderService creates the encoder.
func NewEncoderService() *EncoderService {
	return &EncoderService{
		log: log.With().Str("component", "sepa-qr").Logger(),
	}
}

// Encode builds the canonical 12-field payload:
//
//	1 service tag, 2 version, 3 charset, 4 identification, 5 BIC,
//	6 name, 7 IBAN, 8 amount, 9 purpose code, 10 structured reference,
//	11 unstructured remittance, 12 beneficiary-to-originator info.
//
// Fields 9, 10 and 12 are unused by this system and stay empty; they must be
// emitted as empty lines, not dropped. The amount is "EUR" directly followed
// by the value with exactly two decimals and no thousands separators.
func (s *EncoderService) Encode(data *QRData) (string, error) {
	if data == nil {
		return "", ErrNilData
	}

	account := iban.Normalize(data.IBAN)
	if account == "" {
		return "", ErrMissingIBAN
	}
	name := truncate(strings.TrimSpace(data.Name), maxNameLength)
	if name == "" {
		return "", ErrMissingName
	}
	if data.Amount.IsNegative() {
		return "", fmt.Errorf("%w: %s", ErrNegativeAmount, data.Amount.String())
	}

	bic := truncate(iban.Normalize(data.BIC), maxBICLength)

	// Advisory only: a foreign IBAN legitimately fails the Dutch shape and a
	// typo fails mod-97, but neither may block payment generation.
	if !iban.MatchesDutchFormat(account) {
		s.log.Warn().Str("iban", account).
			Msg("IBAN does not match the Dutch format (NL + 2 digits + 4 letters + 10 digits)")
	}
	if err := iban.ValidateChecksum(account); err != nil {
		s.log.Warn().Str("iban", account).Err(err).Msg("IBAN checksum check failed")
	}

	remittance := strings.TrimSpace(data.Purpose)
	if remittance == "" {
		remittance = strings.TrimSpace(data.Reference)
	}
	remittance = truncate(remittance, maxRemittanceLength)

	amount := "EUR" + data.Amount.Round(2).StringFixed(2)

	fields := []string{
		ServiceTag,
		Version,
		CharacterSet,
		Identification,
		bic,
		name,
		account,
		amount,
		"", // purpose code, unused
		"", // structured reference, unused
		remittance,
		"", // beneficiary-to-originator information, unused
	}
	return strings.Join(fields, "\n"), nil
}

// truncate cuts s to at most n characters, counting runes so a multi-byte
// character is never split.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
