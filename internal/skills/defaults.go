package skills

// Default dictionaries, aligned with the seeded skills catalog. Deployments
// override these through configuration files.

func DefaultCanonicalSkills() []string {
	return []string{
		// Programming languages
		"python", "java", "javascript", "typescript", "c++", "c#", "ruby",
		"php", "swift", "kotlin", "go", "rust", "scala", "r", "matlab",
		"perl", "bash", "powershell",
		// Web
		"html", "css", "react", "angular", "vue", "node.js", "express",
		"django", "flask", "spring", "asp.net", "jquery", "bootstrap",
		"tailwind", "sass", "webpack", "next.js",
		// Databases
		"sql", "mysql", "postgresql", "mongodb", "redis", "cassandra",
		"oracle", "sqlite", "dynamodb", "elasticsearch", "neo4j", "mariadb",
		// Cloud and DevOps
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab",
		"github actions", "terraform", "ansible", "devops", "linux", "unix",
		"nginx", "apache",
		// Data science and ML
		"machine learning", "deep learning", "tensorflow", "pytorch",
		"scikit-learn", "keras", "pandas", "numpy", "matplotlib", "nlp",
		"computer vision", "data analysis", "data science", "statistics",
		"big data", "hadoop", "spark", "tableau", "power bi",
		// Mobile
		"android", "ios", "react native", "flutter", "xamarin",
		// General engineering
		"git", "rest", "graphql", "microservices", "agile", "scrum", "jira",
		"unit testing", "selenium", "jest", "pytest", "tdd", "oop",
		"data structures", "algorithms", "system design", "networking",
		"security", "blockchain", "embedded systems",
		// Soft skills
		"communication", "leadership", "teamwork", "problem solving",
		"project management", "mentoring",
	}
}

func DefaultAliases() map[string]string {
	return map[string]string{
		"js":         "javascript",
		"ts":         "typescript",
		"golang":     "go",
		"k8s":        "kubernetes",
		"ml":         "machine learning",
		"dl":         "deep learning",
		"postgres":   "postgresql",
		"react.js":   "react",
		"reactjs":    "react",
		"vue.js":     "vue",
		"vuejs":      "vue",
		"nodejs":     "node.js",
		"node":       "node.js",
		"nextjs":     "next.js",
		"sklearn":    "scikit-learn",
		"ci/cd":      "devops",

		"amazon web services":   "aws",
		"google cloud":          "gcp",
		"google cloud platform": "gcp",
	}
}

func DefaultSynonymGroups() [][]string {
	return [][]string{
		{"js", "javascript"},
		{"ts", "typescript"},
		{"ml", "machine learning"},
		{"dl", "deep learning"},
		{"k8s", "kubernetes"},
		{"postgres", "postgresql"},
		{"node", "node.js", "nodejs"},
		{"aws", "amazon web services"},
		{"gcp", "google cloud", "google cloud platform"},
		{"nlp", "natural language processing"},
		{"cv", "computer vision"},
	}
}
