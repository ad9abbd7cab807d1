package seeder

import (
	"context"

	"recruiter-pro/internal/database"
)

type JobSeeder struct{}

func (JobSeeder) Name() string { return "jobs" }

func (JobSeeder) Run(ctx context.Context, db database.DB) error {
	if err := ensureTableColumns(ctx, db, "jobs",
		"job_id",
		"title",
		"required_skills",
		"preferred_skills",
		"min_experience_years",
		"max_experience_years",
		"seniority",
		"education_required",
		"description",
		"active",
		"created_at",
	); err != nil {
		return err
	}

	type item struct {
		ID        string
		Title     string
		Required  []string
		Preferred []string
		MinYears  float64
		MaxYears  *float64
		Seniority string
		Education *string
		Desc      string
	}

	f := func(v float64) *float64 { return &v }
	s := func(v string) *string { return &v }

	items := []item{
		{
			ID:        "JOB-001",
			Title:     "Backend Engineer (Go)",
			Required:  []string{"go", "postgresql", "rest"},
			Preferred: []string{"docker", "kubernetes", "redis"},
			MinYears:  2, MaxYears: f(5),
			Seniority: "mid",
			Education: s("bachelor"),
			Desc:      "Design and operate Go microservices backed by PostgreSQL and Redis. REST APIs, message queues, CI/CD pipelines.",
		},
		{
			ID:        "JOB-002",
			Title:     "Senior Python Developer",
			Required:  []string{"python", "django", "postgresql"},
			Preferred: []string{"aws", "docker", "celery"},
			MinYears:  5, MaxYears: f(8),
			Seniority: "senior",
			Education: s("bachelor"),
			Desc:      "Own backend services in Python and Django. Scale PostgreSQL workloads, deploy on AWS with Docker.",
		},
		{
			ID:        "JOB-003",
			Title:     "Frontend Developer",
			Required:  []string{"javascript", "react", "css"},
			Preferred: []string{"typescript", "next.js"},
			MinYears:  1, MaxYears: f(4),
			Seniority: "mid",
			Desc:      "Build responsive interfaces in React and modern JavaScript. TypeScript and Next.js experience is a plus.",
		},
		{
			ID:        "JOB-004",
			Title:     "Data Scientist",
			Required:  []string{"python", "machine learning", "sql"},
			Preferred: []string{"tensorflow", "pytorch", "spark"},
			MinYears:  3, MaxYears: f(7),
			Seniority: "senior",
			Education: s("master"),
			Desc:      "Develop predictive models in Python. Machine learning pipelines, SQL analytics, deep learning with TensorFlow or PyTorch.",
		},
		{
			ID:        "JOB-005",
			Title:     "DevOps Engineer",
			Required:  []string{"kubernetes", "docker", "terraform"},
			Preferred: []string{"aws", "ansible", "prometheus"},
			MinYears:  3, MaxYears: f(8),
			Seniority: "senior",
			Desc:      "Run Kubernetes clusters and infrastructure as code with Terraform. Observability with Prometheus and Grafana.",
		},
		{
			ID:        "JOB-006",
			Title:     "Engineering Manager",
			Required:  []string{"leadership", "agile", "software architecture"},
			Preferred: []string{"go", "python"},
			MinYears:  8,
			Seniority: "manager",
			Education: s("bachelor"),
			Desc:      "Lead a team of backend engineers. Agile delivery, architecture reviews, hiring and mentoring.",
		},
		{
			ID:        "JOB-007",
			Title:     "Junior QA Engineer",
			Required:  []string{"testing", "selenium"},
			Preferred: []string{"python", "ci/cd"},
			MinYears:  0, MaxYears: f(2),
			Seniority: "entry",
			Desc:      "Write and maintain automated test suites with Selenium. Manual exploratory testing on new features.",
		},
		{
			ID:        "JOB-008",
			Title:     "Mobile Developer (Android)",
			Required:  []string{"kotlin", "android"},
			Preferred: []string{"java", "firebase"},
			MinYears:  2, MaxYears: f(6),
			Seniority: "mid",
			Desc:      "Ship Android features in Kotlin. Firebase integration, Play Store releases, crash triage.",
		},
	}

	for _, it := range items {
		_, err := db.Exec(ctx,
			`INSERT INTO jobs (job_id, title, required_skills, preferred_skills,
			                   min_experience_years, max_experience_years, seniority,
			                   education_required, description, active, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, NOW())
			 ON CONFLICT (job_id) DO NOTHING`,
			it.ID, it.Title, it.Required, it.Preferred,
			it.MinYears, it.MaxYears, it.Seniority, it.Education, it.Desc,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
