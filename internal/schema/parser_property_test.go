package schema

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test plan for property-based testing:
// 1. Randomly generated valid schemas parse without errors
// 2. Declaration and field counts match what was generated
// 3. Type reference wrappers round-trip through String()
// 4. Truncating a valid schema mid-declaration is consistently rejected

func TestParseSchema_PropertyRandomSchemas(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := range 50 {
		t.Run(fmt.Sprintf("random_schema_%d", i), func(t *testing.T) {
			source, typeCount := generateRandomSchema(rng)

			doc, err := ParseSchema(source)
			require.NoError(t, err, "generated schema should parse: %s", source)
			assert.Len(t, doc.Types, typeCount)
		})
	}
}

func TestParseSchema_PropertyFieldCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := range 30 {
		fieldCount := 1 + rng.Intn(8)
		var b strings.Builder
		fmt.Fprintf(&b, "type T%d {\n", i)
		for f := range fieldCount {
			fmt.Fprintf(&b, "  field%d: %s\n", f, randomTypeRef(rng, 0))
		}
		b.WriteString("}\n")

		doc, err := ParseSchema(b.String())
		require.NoError(t, err)
		require.Len(t, doc.Types, 1)
		assert.Len(t, doc.Types[0].Fields, fieldCount)
	}
}

func TestParseSchema_PropertyTypeRefRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for range 100 {
		source := randomTypeRef(rng, 0)
		ref := mustParseRef(t, source)
		assert.Equal(t, source, ref.String(), "type reference should round-trip")
	}
}

func TestParseSchema_PropertyTruncationRejected(t *testing.T) {
	source := `type User { id: ID! name: String }`
	tokensPerPrefix := []int{len(source) - 1, len(source) - 8, len(source) - 15}

	for _, cut := range tokensPerPrefix {
		truncated := source[:cut]
		_, err := ParseSchema(truncated)
		assert.Error(t, err, "truncated schema should fail: %q", truncated)
	}
}

func generateRandomSchema(rng *rand.Rand) (string, int) {
	typeCount := 1 + rng.Intn(5)
	var b strings.Builder

	for i := range typeCount {
		switch rng.Intn(3) {
		case 0:
			fmt.Fprintf(&b, "type Obj%d {\n", i)
			for f := range 1 + rng.Intn(4) {
				fmt.Fprintf(&b, "  f%d: %s\n", f, randomTypeRef(rng, 0))
			}
			b.WriteString("}\n")
		case 1:
			fmt.Fprintf(&b, "enum Enum%d {\n", i)
			for v := range 1 + rng.Intn(4) {
				fmt.Fprintf(&b, "  VALUE_%d\n", v)
			}
			b.WriteString("}\n")
		case 2:
			fmt.Fprintf(&b, "input Input%d {\n", i)
			for f := range 1 + rng.Intn(3) {
				fmt.Fprintf(&b, "  f%d: %s\n", f, randomTypeRef(rng, 0))
			}
			b.WriteString("}\n")
		}
	}

	return b.String(), typeCount
}

func randomTypeRef(rng *rand.Rand, depth int) string {
	names := []string{"String", "Int", "Float", "Boolean", "ID"}
	base := names[rng.Intn(len(names))]

	if depth < 2 && rng.Intn(3) == 0 {
		inner := randomTypeRef(rng, depth+1)
		base = "[" + inner + "]"
	}
	if rng.Intn(2) == 0 {
		base += "!"
	}
	return base
}
