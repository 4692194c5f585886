package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	cases := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"no pages", 1, 0, nil},
		{"single page", 1, 1, []int{1}},
		{"three pages", 2, 3, []int{1, 2, 3}},
		{"near the start", 1, 9, []int{1, 2, 3, Ellipsis, 9}},
		{"second page", 2, 9, []int{1, 2, 3, Ellipsis, 9}},
		{"middle", 5, 9, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 9}},
		{"last of the middle", 6, 9, []int{1, Ellipsis, 5, 6, 7, Ellipsis, 9}},
		{"third from the end", 7, 9, []int{1, Ellipsis, 7, 8, 9}},
		{"near the end", 8, 9, []int{1, Ellipsis, 7, 8, 9}},
		{"last page", 9, 9, []int{1, Ellipsis, 7, 8, 9}},
		{"exactly four pages", 3, 4, []int{1, Ellipsis, 2, 3, 4}},
		{"current clamped low", 0, 9, []int{1, 2, 3, Ellipsis, 9}},
		{"current clamped high", 42, 9, []int{1, Ellipsis, 7, 8, 9}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PageWindow(tc.current, tc.total))
		})
	}
}
