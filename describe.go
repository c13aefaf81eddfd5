package ecsgo

import (
	"fmt"
	"io"
	"strings"
)

// Describe writes a one-line summary per archetype to out, in creation
// order: id, entity count and kind names ordered by kind id.
func (w *World) Describe(out io.Writer) error {
	types := w.registry.Types()
	if _, err := fmt.Fprintf(out, "archetypes: %d, entities: %d\n", w.Len(), w.EntityCount()); err != nil {
		return err
	}
	for _, a := range w.archetypes {
		ids := a.Fingerprint().IDs()
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = types[id].Name()
		}
		if _, err := fmt.Fprintf(out, "  #%d entities=%d kinds=[%s]\n", a.id, a.Len(), strings.Join(names, " ")); err != nil {
			return err
		}
	}
	return nil
}
