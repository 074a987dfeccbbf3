package base58_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selesy/x402-svm-buyer/internal/solana/base58"
)

func TestRoundTripPublicKeys(t *testing.T) {
	tests := []struct {
		name string
		b58  string
	}{
		{"system program", "11111111111111111111111111111111"},
		{"token program", "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"},
		{"associated token program", "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"},
		{"merchant", "HVnsW7xz1VkXEySxvXuMj6jUa3aewQbbCUkYis1DEh6Q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := base58.Decode(tt.b58)
			require.NoError(t, err)
			assert.Len(t, raw, 32)
			assert.Equal(t, tt.b58, base58.Encode(raw))
		})
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	_, err := base58.Decode("not0valid")
	require.Error(t, err)
}

func TestEncodeLeadingZeros(t *testing.T) {
	raw := make([]byte, 32)
	raw[31] = 1

	encoded := base58.Encode(raw)
	decoded, err := base58.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestDecodeEmpty(t *testing.T) {
	raw, err := base58.Decode("")
	require.NoError(t, err)
	assert.Empty(t, raw)
}
