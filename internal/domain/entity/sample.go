package entity

// Sample is one FHIR resource held as its raw JSON text. The payload is
// opaque to this system: it is validated for well-formedness at load time
// and published verbatim.
type Sample string

// SampleSet is an ordered sequence of samples with a round-robin cursor.
// The cursor increases monotonically and wraps via modulo, so selection
// cycles through the set indefinitely. Not safe for concurrent use; the
// set is owned by the single send loop.
type SampleSet struct {
	samples []Sample
	cursor  uint64
}

// NewSampleSet creates a SampleSet over the given samples, preserving order.
func NewSampleSet(samples []Sample) *SampleSet {
	return &SampleSet{samples: samples}
}

// Next returns the sample at the current cursor position and advances the
// cursor. The cursor advances even if the caller fails to deliver the
// sample. Panics on an empty set; callers must check IsEmpty first.
func (s *SampleSet) Next() Sample {
	sample := s.samples[s.cursor%uint64(len(s.samples))]
	s.cursor++
	return sample
}

// Len returns the number of samples in the set.
func (s *SampleSet) Len() int {
	return len(s.samples)
}

// IsEmpty reports whether the set contains no samples.
func (s *SampleSet) IsEmpty() bool {
	return len(s.samples) == 0
}
