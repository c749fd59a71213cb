// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// Pagination bounds applied by ParsePage.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
//
// Example:
//
//	n := utils.AtoiDefault("42", 0) // returns 42
//	n = utils.AtoiDefault("", 10)   // returns 10
//	n = utils.AtoiDefault("x", 5)   // returns 5
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// ParsePage reads raw page and page_size query values. paged reports whether
// either was supplied; the returned numbers are always usable, clamped to
// page >= 1 and 1 <= size <= MaxPageSize.
//
//	utils.ParsePage("", "")     // 1, 20, false
//	utils.ParsePage("3", "500") // 3, 100, true
//	utils.ParsePage("x", "0")   // 1, 1, true
func ParsePage(pageRaw, sizeRaw string) (page, size int, paged bool) {
	paged = pageRaw != "" || sizeRaw != ""

	page = AtoiDefault(pageRaw, DefaultPage)
	if page < 1 {
		page = 1
	}
	size = AtoiDefault(sizeRaw, DefaultPageSize)
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size, paged
}
