package types

// segMatcher matches one string segment of a key. Captured segments are
// returned to the decoder in order.
type segMatcher struct {
	capture bool
	match   func(seg string) bool
}

// lit matches the label exactly without capturing it.
func lit(label string) segMatcher {
	return segMatcher{match: func(seg string) bool { return seg == label }}
}

// oneOf matches and captures any of the labels.
func oneOf(labels ...string) segMatcher {
	return segMatcher{
		capture: true,
		match: func(seg string) bool {
			for _, label := range labels {
				if seg == label {
					return true
				}
			}
			return false
		},
	}
}

// variable captures any string segment.
func variable() segMatcher {
	return segMatcher{capture: true, match: func(string) bool { return true }}
}

// keyShape is the exact layout of one kind of IBC key: the IBC address
// segment followed by exactly len(segs) string segments.
type keyShape struct {
	desc string
	segs []segMatcher
}

func newShape(desc string, segs ...segMatcher) keyShape {
	return keyShape{desc: desc, segs: segs}
}

// match returns the captured segments when the key has exactly this shape.
func (s keyShape) match(key Key) ([]string, bool) {
	if key.Len() != len(s.segs)+1 || !IsIbcKey(key) {
		return nil, false
	}

	captured := make([]string, 0, len(s.segs))
	for i, m := range s.segs {
		seg, ok := key.Segments[i+1].StringValue()
		if !ok || !m.match(seg) {
			return nil, false
		}
		if m.capture {
			captured = append(captured, seg)
		}
	}

	return captured, true
}

// decode is match reporting a mismatch as ErrInvalidKey.
func (s keyShape) decode(key Key) ([]string, error) {
	captured, ok := s.match(key)
	if !ok {
		return nil, ErrInvalidKey.Wrapf("the key doesn't have %s: %s", s.desc, key)
	}
	return captured, nil
}
