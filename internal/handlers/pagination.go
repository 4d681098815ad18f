package handlers

import (
	"strconv"

	"contactbook/internal/store"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// parsePageParams reads 1-based page and size query values, falling back to
// the defaults for anything absent or non-positive.
func parsePageParams(pageStr, sizeStr string) store.Page {
	page := store.Page{Number: defaultPage, Size: defaultSize}

	if pageStr != "" {
		if p, err := strconv.ParseInt(pageStr, 10, 64); err == nil && p >= 1 {
			page.Number = p
		}
	}
	if sizeStr != "" {
		if s, err := strconv.ParseInt(sizeStr, 10, 64); err == nil && s >= 1 {
			page.Size = s
		}
	}
	return page
}
