package features

// ReferenceCorpus is the cold-start fit corpus used when the job catalog is
// empty. Fitting on a fixed document set keeps pair scoring deterministic;
// the vectorizer is never refit on the pair being scored.
func ReferenceCorpus() []string {
	return []string{
		"backend engineer go postgresql rest apis microservices docker kubernetes redis message queues",
		"senior python developer django flask postgresql aws docker celery scalable backend services",
		"frontend developer javascript react css html typescript responsive web interfaces",
		"data scientist python machine learning sql tensorflow pytorch statistics predictive models",
		"devops engineer kubernetes docker terraform aws ansible prometheus grafana infrastructure as code",
		"engineering manager leadership agile software architecture mentoring hiring delivery",
		"qa engineer testing selenium automation manual exploratory regression suites",
		"mobile developer android kotlin java firebase play store releases",
		"full stack developer node.js react postgresql rest graphql docker",
		"data engineer spark sql etl pipelines airflow kafka warehousing",
		"security engineer penetration testing network security compliance audits",
		"product analyst sql excel dashboards reporting stakeholder communication",
	}
}
