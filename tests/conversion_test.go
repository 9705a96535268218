package tests

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/duo/pkg/duo"
	"github.com/ib-77/duo/pkg/duo/maybe"
	"github.com/ib-77/duo/pkg/duo/outcome"
)

// TestTokenValidationFlow drives realistic API-token inputs through both
// containers and the bridges between them: parse -> normalize -> default.
func TestTokenValidationFlow(t *testing.T) {
	valid := uuid.New()

	inputs := []string{
		valid.String(),
		strings.ToUpper(valid.String()),
		"not-a-token",
		"",
	}

	var normalized []string
	for _, raw := range inputs {
		token := outcome.Call(func() (uuid.UUID, error) {
			return uuid.Parse(raw)
		})

		rendered := outcome.Match(
			outcome.Map(token, func(id uuid.UUID) string { return id.String() }),
			duo.Identity[string],
			func(err error) string { return "rejected" },
		)
		normalized = append(normalized, rendered)
	}

	require.Len(t, normalized, len(inputs))
	assert.Equal(t, valid.String(), normalized[0])
	assert.Equal(t, valid.String(), normalized[1], "parsing should normalize case")
	assert.Equal(t, "rejected", normalized[2])
	assert.Equal(t, "rejected", normalized[3])
}

func TestMaybeOutcomeBridgeEndToEnd(t *testing.T) {
	id := uuid.New()

	// A lookup that may miss, modeled as a Maybe.
	lookup := func(key string) maybe.Maybe[uuid.UUID] {
		if key == "known" {
			return maybe.Present(id)
		}
		return maybe.Absent[uuid.UUID]()
	}

	hit := outcome.OkOr(lookup("known"), "missing key")
	require.True(t, hit.IsSuccess())
	assert.Equal(t, id, hit.Unwrap())

	miss := outcome.OkOr(lookup("unknown"), "missing key")
	require.True(t, miss.IsFailure())
	assert.Equal(t, "missing key", miss.UnwrapErr())

	// Back down to a Maybe: the failure side is discarded.
	assert.True(t, miss.Ok().IsAbsent())
	assert.Equal(t, id, hit.Ok().Unwrap())

	// And the failure side survives the other direction.
	assert.Equal(t, "missing key", miss.Err().Unwrap())
}

func TestContainerInterfaceCoversBothTypes(t *testing.T) {
	withDefault := func(c duo.Container[int], def int) int {
		return c.UnwrapOr(def)
	}

	assert.Equal(t, 5, withDefault(maybe.Present(5), 9))
	assert.Equal(t, 9, withDefault(maybe.Absent[int](), 9))
	assert.Equal(t, 5, withDefault(outcome.Success[int, string](5), 9))
	assert.Equal(t, 9, withDefault(outcome.Failure[int]("e"), 9))
}

func TestDefaultingPolicies(t *testing.T) {
	parse := func(raw string) outcome.Outcome[uuid.UUID, error] {
		return outcome.Try(uuid.Parse(raw))
	}

	fallback := uuid.Nil

	// Eager default on the failure path.
	got := parse("garbage").UnwrapOr(fallback)
	assert.Equal(t, fallback, got)

	// Lazy default never runs on the success path.
	calls := 0
	id := uuid.New()
	got = parse(id.String()).UnwrapOrElse(func(error) uuid.UUID {
		calls++
		return fallback
	})
	assert.Equal(t, id, got)
	assert.Zero(t, calls, "lazy default must not run on success")
}
