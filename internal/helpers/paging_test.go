package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageSize(t *testing.T) {
	casos := []struct {
		pageStr, sizeStr string
		page, size       int
	}{
		{"", "", 1, 10},
		{"3", "25", 3, 25},
		{" 2 ", " 5 ", 2, 5},
		{"0", "-4", 1, 10},
		{"abc", "xyz", 1, 10},
		{"1", "500", 1, 100},
	}
	for _, caso := range casos {
		page, size := ParsePageSize(caso.pageStr, caso.sizeStr)
		assert.Equal(t, caso.page, page, "page %q", caso.pageStr)
		assert.Equal(t, caso.size, size, "size %q", caso.sizeStr)
	}
}
