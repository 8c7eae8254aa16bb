package kvlist

import (
	"fmt"
	"io"
	"strings"
)

// EmptyMarker is written by RenderTo in place of entries when the list is empty.
const EmptyMarker = "list is empty"

// RenderTo writes one "{key}.{value}" line per entry in traversal order, or
// EmptyMarker when the list holds no entries.
func (l *List[K, V]) RenderTo(w io.Writer) error {
	if l.head == nil {
		if _, err := io.WriteString(w, EmptyMarker); err != nil {
			return fmt.Errorf("failed to render empty list: %w", err)
		}
		return nil
	}
	for n := l.head; n != nil; n = n.next {
		if _, err := fmt.Fprintf(w, "%v.%v\n", n.key, n.value); err != nil {
			return fmt.Errorf("failed to render entry %v: %w", n.key, err)
		}
	}
	return nil
}

// String returns the rendered list
func (l *List[K, V]) String() string {
	builder := strings.Builder{}
	_ = l.RenderTo(&builder)
	return builder.String()
}
