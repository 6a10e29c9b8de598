package matching

import "github.com/xrash/smetrics"

// Jaro-Winkler parameters: the prefix boost only applies above boostThreshold,
// and at most prefixSize leading characters count toward it.
const (
	boostThreshold = 0.7
	prefixSize     = 4
)

// SimilarityFunc scores two normalized skill strings in [0, 1].
type SimilarityFunc func(a, b string) float64

// JaroWinkler is the default SimilarityFunc.
func JaroWinkler(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	return smetrics.JaroWinkler(a, b, boostThreshold, prefixSize)
}
