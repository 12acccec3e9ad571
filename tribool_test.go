package plantowerpms5003

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tribool_Not(t *testing.T) {
	assert.Equal(t, False, True.Not())
	assert.Equal(t, True, False.Not())
	assert.Equal(t, Unknown, Unknown.Not())
}

func Test_Tribool_And_truth_table(t *testing.T) {
	table := []struct{ a, b, expected Tribool }{
		{False, False, False}, {False, True, False}, {False, Unknown, False},
		{True, False, False}, {True, True, True}, {True, Unknown, Unknown},
		{Unknown, False, False}, {Unknown, True, Unknown}, {Unknown, Unknown, Unknown},
	}
	for _, row := range table {
		assert.Equal(t, row.expected, row.a.And(row.b), "%v && %v", row.a, row.b)
	}
}

func Test_Tribool_Or_truth_table(t *testing.T) {
	table := []struct{ a, b, expected Tribool }{
		{False, False, False}, {False, True, True}, {False, Unknown, Unknown},
		{True, False, True}, {True, True, True}, {True, Unknown, True},
		{Unknown, False, Unknown}, {Unknown, True, True}, {Unknown, Unknown, Unknown},
	}
	for _, row := range table {
		assert.Equal(t, row.expected, row.a.Or(row.b), "%v || %v", row.a, row.b)
	}
}

func Test_Tribool_Equal_is_unknown_when_either_side_is_unknown(t *testing.T) {
	assert.Equal(t, True, True.Equal(True))
	assert.Equal(t, False, True.Equal(False))
	assert.Equal(t, True, False.Equal(False))
	assert.Equal(t, Unknown, Unknown.Equal(Unknown))
	assert.Equal(t, Unknown, True.Equal(Unknown))
	assert.Equal(t, True, True.NotEqual(False))
	assert.Equal(t, Unknown, Unknown.NotEqual(False))
}

func Test_Tribool_conversions(t *testing.T) {
	assert.Equal(t, True, TriboolOf(true))
	assert.Equal(t, False, TriboolOf(false))
	assert.True(t, True.Bool())
	assert.False(t, Unknown.Bool())
	assert.False(t, Unknown.IsKnown())
	assert.True(t, False.IsKnown())
	assert.Equal(t, "1", True.String())
	assert.Equal(t, "0", False.String())
	assert.Equal(t, "?", Unknown.String())
}
