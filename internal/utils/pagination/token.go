package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
)

// EncodeLedgerToken creates a base64 encoded token from the date and id of
// the last entry on a page.
func EncodeLedgerToken(cursor domain.LedgerCursor) string {
	return EncodeMultiFieldToken(cursor.Date.String(), strconv.FormatInt(cursor.ID, 10))
}

// DecodeLedgerToken parses a token produced by EncodeLedgerToken.
func DecodeLedgerToken(token string) (domain.LedgerCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return domain.LedgerCursor{}, err
	}
	if len(parts) != 2 {
		return domain.LedgerCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := domain.ParseDate(parts[0])
	if err != nil {
		return domain.LedgerCursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id < 1 {
		return domain.LedgerCursor{}, fmt.Errorf("invalid pagination token format (id parse)")
	}

	return domain.LedgerCursor{Date: date, ID: id}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
