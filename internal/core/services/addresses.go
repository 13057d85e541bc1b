package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var addressValidator = validator.New()

// SplitAddresses splits a comma or semicolon separated address list.
func SplitAddresses(raw string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' }) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// NormalizeAddresses validates every address of raw and returns the list
// joined with ", " alongside the split addresses. field names the input in
// validation errors.
func NormalizeAddresses(raw, field string) (string, []string, error) {
	addrs := SplitAddresses(raw)
	for _, addr := range addrs {
		if err := addressValidator.Var(addr, "required,email"); err != nil {
			return "", nil, apperrors.NewValidationError(fmt.Sprintf("%s contains an invalid email address %q", field, addr))
		}
	}
	return strings.Join(addrs, ", "), addrs, nil
}
