package config

// Default screening policy values.
const (
	DefaultShortlistThreshold  = 70
	DefaultSimilarityThreshold = 0.80
	DefaultNameScanLines       = 10
	DefaultCountryCode         = "+91"
)

// ScreeningConfig holds the policy of the resume parsing and matching pipeline.
// The two thresholds are never read from a file or the environment; code that
// builds its own ScreeningConfig (tests, embedding callers) may still set them.
type ScreeningConfig struct {
	ShortlistThreshold  int      `mapstructure:"-" json:"shortlist_threshold" validate:"gte=0,lte=100"`
	SimilarityThreshold float64  `mapstructure:"-" json:"similarity_threshold" validate:"gte=0,lte=1"`
	SkillVocabulary     []string `mapstructure:"skill_vocabulary" json:"skill_vocabulary" validate:"dive,required"`
	NameScanLines       int      `mapstructure:"name_scan_lines" json:"name_scan_lines" validate:"gte=1"`
	DefaultCountryCode  string   `mapstructure:"default_country_code" json:"default_country_code" validate:"required,startswith=+,max=4"`
	Locations           []string `mapstructure:"locations" json:"locations" validate:"dive,required"`
}

// DefaultScreeningConfig returns the compiled-in screening policy.
func DefaultScreeningConfig() ScreeningConfig {
	return ScreeningConfig{
		ShortlistThreshold:  DefaultShortlistThreshold,
		SimilarityThreshold: DefaultSimilarityThreshold,
		SkillVocabulary:     DefaultSkillVocabulary(),
		NameScanLines:       DefaultNameScanLines,
		DefaultCountryCode:  DefaultCountryCode,
		Locations:           DefaultLocations(),
	}
}

// DefaultSkillVocabulary returns the recognized skill list.
// Entries that normalize to one or two characters (c, r, go) are left out
// because substring spotting would match them almost everywhere.
func DefaultSkillVocabulary() []string {
	return []string{
		"javascript", "react", "node.js", "express", "mongodb", "mysql", "postgresql",
		"python", "java", "typescript", "angular", "vue", "next.js", "aws", "docker",
		"kubernetes", "git", "html", "css", "tailwind", "redux", "graphql", "prisma",
		"spring boot", "django", "flask", "golang", "rust", "kotlin", "swift",
		"redis", "kafka", "terraform", "jenkins", "linux", "azure", "gcp",
		"machine learning", "tensorflow", "pytorch", "pandas", "numpy",
		"rest api", "microservices", "firebase", "figma",
	}
}

// DefaultLocations returns the gazetteer used for location detection.
func DefaultLocations() []string {
	return []string{
		// Cities
		"Bengaluru", "Bangalore", "Hyderabad", "Chennai", "Mumbai", "Pune", "New Delhi", "Delhi",
		"Noida", "Gurugram", "Gurgaon", "Kolkata", "Ahmedabad", "Jaipur", "Kochi", "Coimbatore",
		"Visakhapatnam", "Vijayawada", "Mysuru", "Mysore", "Indore", "Bhubaneswar", "Chandigarh",
		"Lucknow", "Nagpur", "Thiruvananthapuram", "Trivandrum", "Madurai", "Warangal",
		"London", "Singapore", "Dubai", "San Francisco", "New York", "Seattle", "Toronto",
		// States and union territories
		"Andhra Pradesh", "Telangana", "Karnataka", "Tamil Nadu", "Kerala", "Maharashtra",
		"Gujarat", "Rajasthan", "Uttar Pradesh", "West Bengal", "Odisha", "Punjab", "Haryana",
		"Madhya Pradesh", "Bihar", "Goa",
		// Countries
		"India",
	}
}
