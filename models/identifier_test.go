package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    IdentifierKind
		wantErr bool
	}{
		{name: "email", raw: "a@x.com", kind: IdentifierEmail},
		{name: "email with subdomain", raw: "user@mail.example.org", kind: IdentifierEmail},
		{name: "mobile", raw: "5551234", kind: IdentifierMobile},
		{name: "mobile with plus", raw: "+15551234567", kind: IdentifierMobile},
		{name: "padded email", raw: "  a@x.com  ", kind: IdentifierEmail},
		{name: "too short for mobile", raw: "12345", wantErr: true},
		{name: "not an email", raw: "a@x", wantErr: true},
		{name: "free text", raw: "hello world", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identifier, err := ParseIdentifier(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidIdentifier)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.kind, identifier.Kind)
		})
	}
}
