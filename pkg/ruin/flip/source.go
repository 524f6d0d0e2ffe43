package flip

// Constant is a Source which always draws the same value. A Constant below
// 0.5 makes every flip land on tails, anything else on heads.
type Constant float64

func (c Constant) Float64() float64 {
	return float64(c)
}

// Sequence is a Source which cycles through a fixed list of draws. It also
// keeps track of how many values have been drawn from it.
type Sequence struct {
	values []float64
	draws  int
}

// NewSequence creates a new Sequence which cycles through the given values.
func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		values = []float64{0}
	}

	return &Sequence{values: values}
}

func (seq *Sequence) Float64() float64 {
	value := seq.values[seq.draws%len(seq.values)]
	seq.draws++
	return value
}

// Draws returns the number of values drawn from the Sequence so far.
func (seq *Sequence) Draws() int {
	return seq.draws
}
