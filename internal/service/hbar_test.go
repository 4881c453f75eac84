package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTinybar(t *testing.T) {
	tests := []struct {
		tinybar int64
		want    string
	}{
		{123456789, "1.23456789"},
		{0, "0.00000000"},
		{1, "0.00000001"},
		{100_000_000, "1.00000000"},
		{20000, "0.00020000"},
		{10_000_000_000, "100.00000000"},
		{-123456789, "-1.23456789"},
		{-1, "-0.00000001"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatTinybar(tc.tinybar), "tinybar=%d", tc.tinybar)
	}
}
