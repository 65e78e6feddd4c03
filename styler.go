package drawer

// Styler observes the pane's motion to derive a visual effect. On every
// physics tick (and on every non-animated snap) each styler registered for
// the active direction receives the pane's progress: 0 when closed, 1 when
// opened to the reveal width, clamped to [0, 1] beyond it. Stylers must
// not block the tick and must not mutate the controller synchronously.
type Styler interface {
	Style(progress float64, direction Direction)
}

// stylerRegistry keeps the per-direction ordered styler lists. Insertion
// order is preserved; duplicate registration of the same styler for the
// same direction is ignored.
type stylerRegistry struct {
	byDirection map[Direction][]Styler
}

func newStylerRegistry() *stylerRegistry {
	return &stylerRegistry{byDirection: make(map[Direction][]Styler)}
}

// add registers s for every cardinal direction in mask.
func (r *stylerRegistry) add(s Styler, mask Direction) {
	ForEachDirection(mask, func(d Direction) {
		for _, existing := range r.byDirection[d] {
			if existing == s {
				return
			}
		}
		r.byDirection[d] = append(r.byDirection[d], s)
	})
}

// remove unregisters s from every cardinal direction in mask.
func (r *stylerRegistry) remove(s Styler, mask Direction) {
	ForEachDirection(mask, func(d Direction) {
		list := r.byDirection[d]
		for i, existing := range list {
			if existing == s {
				r.byDirection[d] = append(list[:i], list[i+1:]...)
				return
			}
		}
	})
}

// forDirection returns the stylers registered for every direction in mask,
// in canonical direction order then insertion order. The returned slice is
// a copy.
func (r *stylerRegistry) forDirection(mask Direction) []Styler {
	var out []Styler
	ForEachDirection(mask, func(d Direction) {
		out = append(out, r.byDirection[d]...)
	})
	return out
}

// broadcast forwards progress to all stylers registered for d, in
// insertion order.
func (r *stylerRegistry) broadcast(progress float64, d Direction) {
	for _, s := range r.byDirection[d] {
		s.Style(progress, d)
	}
}
