package cache

import (
	"fmt"
	"strings"
)

// keyNamespace prefixes every key written by this application so that a
// shared Redis instance can be swept per application.
const keyNamespace = "shop"

// Key identifies one cached page of a listed resource.
type Key struct {
	// Resource is the resource kind being paginated (e.g. "products").
	Resource string

	// Skip is the pagination offset of the page.
	Skip int

	// Limit is the page size.
	Limit int
}

// String generates a deterministic cache key string.
// Format: shop:resource:skip=N:limit=M
//
// Example:
//
//	shop:products:skip=0:limit=10
func (k Key) String() string {
	resource := strings.Trim(k.Resource, ":")
	return fmt.Sprintf("%s:%s:skip=%d:limit=%d", keyNamespace, resource, k.Skip, k.Limit)
}

// ResourcePrefix returns the key prefix shared by every page of a resource.
// Passing the result to Manager.DeleteByPrefix evicts the whole resource
// class regardless of which skip/limit windows were populated.
func ResourcePrefix(resource string) string {
	return fmt.Sprintf("%s:%s:", keyNamespace, strings.Trim(resource, ":"))
}
