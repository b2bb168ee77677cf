package config

import (
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
)

// PageSize is the fixed pagination window of the browse endpoint. Page n
// accumulates the first n*PageSize matches.
func PageSize() int {
	raw := os.Getenv("PAGE_SIZE")
	if raw == "" {
		return 20
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size <= 0 {
		log.Printf("⚠️ PAGE_SIZE %q is invalid, using default 20", raw)
		return 20
	}
	return size
}

// RootCategoryID designates the top-level category whose declared filterable
// attributes apply to every category. uuid.Nil (unset) means no storewide
// attributes.
func RootCategoryID() uuid.UUID {
	raw := os.Getenv("ROOT_CATEGORY_ID")
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		log.Printf("⚠️ ROOT_CATEGORY_ID %q is not a valid UUID, ignoring", raw)
		return uuid.Nil
	}
	return id
}

// Port the HTTP server listens on.
func Port() string {
	return getEnv("PORT", "8081")
}
