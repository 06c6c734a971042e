package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		data string
		want uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sum([]byte(tt.data)))
			assert.Equal(t, tt.want, SumString(tt.data))
		})
	}
}

func TestSum_Deterministic(t *testing.T) {
	data := randBytes(4096)
	assert.Equal(t, Sum(data), Sum(data))
}

func randBytes(n int) []byte {
	seeded := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	seeded.Read(b)

	return b
}

func BenchmarkSum(b *testing.B) {
	data := randBytes(1024 * 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum(data)
	}
}
