package dice

// Sequence replays fixed values, each reduced modulo n. Once exhausted it
// keeps returning n-1, which fails every percent roll below 100.
type Sequence struct {
	values []int
	next   int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("dice: IntN with non-positive n")
	}
	if s.next >= len(s.values) {
		return n - 1
	}
	v := s.values[s.next]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Remaining reports how many scripted values were not consumed.
func (s *Sequence) Remaining() int {
	return len(s.values) - s.next
}
