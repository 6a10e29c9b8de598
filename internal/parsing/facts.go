package parsing

import (
	"github.com/SanthoshkumarGudi/ATS-SW/internal/config"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

// Extractor turns extracted resume text into CandidateFacts.
// It holds only immutable lookup tables and is safe for concurrent use.
type Extractor struct {
	vocabulary    []string
	nameScanLines int
	countryCode   string
	gazetteer     *Gazetteer
}

// NewExtractor builds an Extractor from the screening configuration.
func NewExtractor(cfg config.ScreeningConfig) *Extractor {
	scan := cfg.NameScanLines
	if scan <= 0 {
		scan = config.DefaultNameScanLines
	}
	code := cfg.DefaultCountryCode
	if code == "" {
		code = config.DefaultCountryCode
	}
	return &Extractor{
		vocabulary:    NormalizeSkills(cfg.SkillVocabulary),
		nameScanLines: scan,
		countryCode:   code,
		gazetteer:     NewGazetteer(cfg.Locations),
	}
}

var defaultExtractor = NewExtractor(config.DefaultScreeningConfig())

// ExtractFacts runs the default Extractor.
func ExtractFacts(text *types.ExtractedText) types.CandidateFacts {
	return defaultExtractor.ExtractFacts(text)
}

// Vocabulary returns the normalized skill vocabulary.
func (e *Extractor) Vocabulary() []string {
	out := make([]string, len(e.vocabulary))
	copy(out, e.vocabulary)
	return out
}

// ExtractFacts applies each field heuristic independently. It never fails:
// fields with no match keep their sentinel values.
func (e *Extractor) ExtractFacts(text *types.ExtractedText) types.CandidateFacts {
	facts := types.EmptyCandidateFacts()
	if text.IsEmpty() {
		return facts
	}

	facts.Name = ExtractName(text.Lines, e.nameScanLines, e.gazetteer.Contains)
	facts.Email = ExtractEmail(text.Full)
	facts.Phone = ExtractPhone(text.Lines, e.countryCode)
	facts.Location = e.gazetteer.ExtractLocation(text.Lines)
	facts.Skills = ExtractSkills(text.Full, e.vocabulary)
	return facts
}
