package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	t.Run("finding the first matching item", func(t *testing.T) {
		require.Equal(t, 1, FindIndex([]int{4, 7, 7}, 7), "Should return the first match")
	})

	t.Run("missing item", func(t *testing.T) {
		require.Equal(t, -1, FindIndex([]string{"a"}, "b"), "Should return -1 when absent")
	})
}

func TestFindIndexFunc(t *testing.T) {
	t.Run("matching by predicate", func(t *testing.T) {
		got := FindIndexFunc([]int{1, 3, 8, 10}, func(v int) bool { return v%2 == 0 })
		require.Equal(t, 2, got, "Should return the first index satisfying the predicate")
	})

	t.Run("empty slice", func(t *testing.T) {
		got := FindIndexFunc(nil, func(v int) bool { return true })
		require.Equal(t, -1, got, "Should return -1 for an empty slice")
	})
}
