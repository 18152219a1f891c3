package textutil

import "strings"

// IDDelimiter separates identifiers joined inside a single tabular field.
// It matches the delimiter the bulk crew dump uses for its directors column.
const IDDelimiter = ","

// JoinIDs renders an identifier list as a single delimited field value.
func JoinIDs(ids []string) string {
	return strings.Join(ids, IDDelimiter)
}

// SplitIDs parses a delimited field value back into an identifier list.
// Empty and whitespace-only segments are dropped; an empty field yields nil.
func SplitIDs(field string) []string {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	parts := strings.Split(field, IDDelimiter)
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ids = append(ids, part)
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}
