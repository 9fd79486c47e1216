package analytics

// SequenceKeys are the canonical keys counted on a flattened grid
var SequenceKeys = []string{
	"P", "B",
	"PP", "BB", "PB", "BP",
	"PPP", "BBB", "PPB", "PBB", "BPP", "BBP",
}

// SequenceCounts maps every key of SequenceKeys to its number of occurrences
type SequenceCounts map[string]int

func NewSequenceCounts() SequenceCounts {
	counts := make(SequenceCounts, len(SequenceKeys))
	for _, key := range SequenceKeys {
		counts[key] = 0
	}
	return counts
}

// Increment only counts canonical keys; anything else is ignored
func (s SequenceCounts) Increment(key string) {
	if _, ok := s[key]; ok {
		s[key]++
	}
}

func (s SequenceCounts) Total() int {
	return s["P"] + s["B"]
}
