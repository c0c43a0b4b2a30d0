package relevance

// Entry is a weighted topical term. Tables are ordered slices rather than
// maps so that score accumulation is deterministic.
type Entry struct {
	Term   string
	Weight float64
}

// Tables holds the curated term/weight tables the scorer matches against.
// Treated as immutable after construction; inject into NewScorer.
type Tables struct {
	Keywords  []Entry
	Languages []Entry
	Companies []Entry
	Concepts  []Entry
}

// DefaultTables returns the curated AI/programming relevance tables.
func DefaultTables() Tables {
	return Tables{
		Keywords: []Entry{
			// Core AI terms (highest weight)
			{"artificial intelligence", 1.0},
			{"machine learning", 1.0},
			{"deep learning", 0.95},
			{"neural networks", 0.9},
			{"natural language processing", 0.9},
			{"computer vision", 0.9},
			{"reinforcement learning", 0.85},

			// AI applications and concepts
			{"automation", 0.7},
			{"robotics", 0.75},
			{"chatbot", 0.6},
			{"algorithm", 0.65},
			{"data science", 0.7},
			{"big data", 0.6},
			{"predictive analytics", 0.65},

			// Programming and software
			{"programming", 0.8},
			{"software development", 0.75},
			{"coding", 0.7},
			{"software engineering", 0.75},
			{"web development", 0.6},
			{"mobile development", 0.6},
			{"devops", 0.65},

			// Tech industry terms
			{"tech startup", 0.6},
			{"silicon valley", 0.5},
			{"innovation", 0.4},
			{"digital transformation", 0.6},
			{"cloud computing", 0.65},
			{"cybersecurity", 0.7},
			{"blockchain", 0.6},

			// General tech terms (lower weight)
			{"technology", 0.3},
			{"tech", 0.3},
			{"digital", 0.25},
			{"internet", 0.2},
			{"software", 0.4},
		},
		Languages: []Entry{
			{"python", 0.9},
			{"r", 0.8},
			{"julia", 0.8},
			{"tensorflow", 0.95},
			{"pytorch", 0.95},
			{"scikit-learn", 0.9},
			{"javascript", 0.6},
			{"java", 0.6},
			{"c++", 0.7},
			{"scala", 0.7},
			{"go", 0.6},
			{"rust", 0.6},
			{"swift", 0.5},
			{"kotlin", 0.5},
			{"sql", 0.5},
			{"matlab", 0.7},
			{"hadoop", 0.7},
			{"spark", 0.8},
		},
		Companies: []Entry{
			// AI-focused companies
			{"openai", 1.0},
			{"deepmind", 1.0},
			{"anthropic", 1.0},
			{"nvidia", 0.9},

			// Big tech with AI focus
			{"google", 0.8},
			{"microsoft", 0.8},
			{"amazon", 0.7},
			{"meta", 0.7},
			{"apple", 0.7},
			{"tesla", 0.8},

			// Other tech companies
			{"uber", 0.6},
			{"airbnb", 0.5},
			{"spotify", 0.5},
			{"netflix", 0.6},
			{"salesforce", 0.6},
			{"oracle", 0.5},
			{"ibm", 0.7},
			{"intel", 0.7},
			{"amd", 0.6},
		},
		Concepts: []Entry{
			{"supervised learning", 0.9},
			{"unsupervised learning", 0.9},
			{"semi-supervised learning", 0.85},
			{"transfer learning", 0.85},
			{"generative ai", 0.95},
			{"large language model", 0.95},
			{"transformer", 0.9},
			{"gpt", 0.9},
			{"bert", 0.85},
			{"convolutional neural network", 0.9},
			{"recurrent neural network", 0.85},
			{"gradient descent", 0.8},
			{"backpropagation", 0.8},
			{"feature engineering", 0.75},
			{"model training", 0.8},
			{"hyperparameter tuning", 0.75},
			{"overfitting", 0.7},
			{"cross-validation", 0.7},
			{"ensemble methods", 0.75},
			{"random forest", 0.7},
			{"support vector machine", 0.7},
			{"k-means clustering", 0.65},
			{"decision tree", 0.6},
			{"linear regression", 0.6},
			{"logistic regression", 0.6},
		},
	}
}

// Words used by the coarse polarity classifier in content analysis. Kept
// intentionally small; the classifier only needs to clear the +-0.1
// thresholds for clearly opinionated text.
var positiveWords = []string{
	"amazing", "breakthrough", "excellent", "exciting", "great", "impressive",
	"innovative", "outstanding", "powerful", "promising", "remarkable",
	"revolutionary", "strong", "successful", "transformative", "valuable",
}

var negativeWords = []string{
	"bad", "concerning", "dangerous", "disappointing", "failed", "failure",
	"flawed", "harmful", "misleading", "poor", "problematic", "risky",
	"terrible", "threat", "weak", "worst",
}
