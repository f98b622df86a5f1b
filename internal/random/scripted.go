package random

// Scripted replays a fixed sequence of integers, for tests that need to pin
// down individual rolls. Each Intn call consumes the next value reduced
// modulo n. Once the sequence is exhausted it wraps around. An empty
// sequence always yields 0.
type Scripted struct {
	Values []int
	next   int
}

// NewScripted returns a Scripted source replaying values.
func NewScripted(values ...int) *Scripted {
	return &Scripted{Values: values}
}

// Intn returns the next scripted value modulo n.
func (s *Scripted) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Float64 always returns 0.
func (s *Scripted) Float64() float64 { return 0 }

// Calls returns how many values have been consumed.
func (s *Scripted) Calls() int { return s.next }
