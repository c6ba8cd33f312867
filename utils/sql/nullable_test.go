package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringValue(t *testing.T) {
	value := "caption"
	assert.Equal(t, "caption", StringValue(&value))
	assert.Equal(t, "", StringValue(nil))
}

func TestIntValue(t *testing.T) {
	value := 30
	assert.Equal(t, 30, IntValue(&value))
	assert.Zero(t, IntValue(nil))
}

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "Wellness", want: "wellness", wantOK: true},
		{input: "  travel  ", want: "travel", wantOK: true},
		{input: "music", want: "music", wantOK: true},
		{input: "   ", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := NormalizeTag(tt.input)
		assert.Equal(t, tt.wantOK, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestClampText(t *testing.T) {
	assert.Equal(t, "short", ClampText("short", 10))
	assert.Equal(t, "trunc", ClampText("truncated", 5))
}
