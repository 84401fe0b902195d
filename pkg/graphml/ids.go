package graphml

import (
	"strconv"
	"strings"
)

// DefaultNodePrefix is prepended to integer node ids.
const DefaultNodePrefix = "n"

func isInteger(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// prefixed reports whether id gets the prefix in GraphML: integers, and ids
// that already look like a prefixed id ("n5", "nn5"). Prefixing the second
// group keeps the mapping reversible, so GML ids 5 and "n5" stay distinct.
func prefixed(prefix, id string) bool {
	for {
		if isInteger(id) {
			return true
		}
		rest, ok := strings.CutPrefix(id, prefix)
		if !ok {
			return false
		}
		id = rest
	}
}

// addPrefix returns the GraphML form of a GML node id.
func addPrefix(prefix, id string) string {
	if prefix == "" || !prefixed(prefix, id) {
		return id
	}
	return prefix + id
}

// stripPrefix returns the GML form of a GraphML node id.
func stripPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	if rest, ok := strings.CutPrefix(id, prefix); ok && prefixed(prefix, rest) {
		return rest
	}
	return id
}
