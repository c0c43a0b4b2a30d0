package reputation

// Curated publication tiers for publication-quality scoring. Matching is
// case-insensitive substring containment against the stored publication
// name.
var tier1Publications = []string{
	"new york times", "wall street journal", "washington post", "reuters",
	"bloomberg", "financial times", "the guardian", "bbc", "cnn",
	"techcrunch", "wired", "ars technica", "the verge",
}

var tier2Publications = []string{
	"forbes", "fortune", "business insider", "mashable", "engadget",
	"zdnet", "venturebeat", "recode", "axios", "fast company",
	"mit technology review", "ieee spectrum",
}

var tier3Publications = []string{
	"techradar", "computerworld", "infoworld", "network world",
	"security week", "ai news", "machine learning mastery",
}

// Publications whose presence boosts the engagement estimate.
var majorPublications = []string{
	"new york times", "wall street journal", "washington post", "reuters",
	"bloomberg", "financial times", "the guardian", "bbc", "cnn",
	"techcrunch", "wired", "ars technica", "the verge", "forbes",
}

// Keywords marking academic or research institutions.
var academicKeywords = []string{"university", "institute", "research", "academic"}

// Specializations that earn a flat expertise bonus each.
var highValueSpecializations = []string{
	"artificial intelligence", "machine learning", "programming",
	"data science", "cybersecurity", "robotics",
}
