package fingerprint_test

import (
	"testing"

	"github.com/arloliu/ordcode/fingerprint"
	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		data string
		want uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fingerprint.Of(tt.data))
		})
	}
}

func TestMatches(t *testing.T) {
	want := fingerprint.Of("orders.v3: (u64, string, bool)")

	assert.True(t, fingerprint.Matches("orders.v3: (u64, string, bool)", want))
	assert.False(t, fingerprint.Matches("orders.v4: (u64, string, bool)", want))
}
