package vocab

// Default returns the built-in vocabulary. A JSON file loaded with
// LoadFile replaces it wholesale.
func Default() *Vocabulary {
	return &Vocabulary{
		Skills: []string{
			"azure blob storage", "azure data factory", "azure sql", "azure devops",
			"azure", "aws", "gcp", "s3", "ec2", "lambda",
			"python", "sql", "dax", "vba", "r", "java", "javascript", "c++",
			"power query", "m language",
			"power bi", "tableau", "looker", "qlik", "excel", "plotly", "dash",
			"power automate", "semantic model", "row-level security",
			"mysql", "postgresql", "sql server", "mongodb", "snowflake", "sqlite",
			"redshift", "bigquery", "oracle",
			"etl", "data pipeline", "airflow", "spark", "kafka", "dbt",
			"data ingestion", "data engineering", "data warehouse",
			"flair", "focus", "hmgp", "fema", "sharepoint", "onedrive",
			"flask", "fastapi", "streamlit", "selenium", "pytest", "django",
			"rest api", "api", "langchain", "faiss",
			"arima", "prophet", "scikit-learn", "pytorch", "tensorflow",
			"nlp", "rag", "vector embeddings", "hugging face", "pinecone",
			"time series", "forecasting", "machine learning",
			"data governance", "data modeling", "kpi", "sla", "etl pipeline",
			"data migration", "data catalog", "data quality", "reconciliation",
			"grant management", "federal grants", "budget forecasting",
			"variance analysis", "anomaly detection", "audit trail",
			"ci/cd", "docker", "kubernetes", "git", "github",
			"windows task scheduler", "task scheduler",
			"aws certified", "fccm", "pmp",
			"stakeholder management", "executive reporting", "director level",
			"bureau wide", "bureau-wide", "self-service reporting", "agile", "scrum",
			"transfer memo", "budget incremental", "disaster recovery",
		},
		Synonyms: map[string][]string{
			"business intelligence": {"power bi", "bi reporting", "dashboards", "tableau", "data visualization"},
			"federal grants":        {"federal funding", "flair", "focus", "grant management", "fema", "disaster recovery"},
			"machine learning":      {"ml", "scikit-learn", "pytorch", "tensorflow", "model training", "deep learning"},
			"data warehouse":        {"snowflake", "sql server", "redshift", "bigquery", "data mart", "olap"},
			"etl":                   {"data pipeline", "data ingestion", "data engineering", "airflow", "data extraction"},
			"agile":                 {"scrum", "sprint", "jira", "iterative", "continuous improvement", "kanban"},
			"api":                   {"rest api", "flask", "fastapi", "endpoint", "http", "web service", "api development"},
			"visualization":         {"power bi", "tableau", "plotly", "dash", "dashboard", "charts", "reporting"},
			"quantitative":          {"arima", "prophet", "forecasting", "statistical", "time series", "analytics"},
			"self-service":          {"power bi", "reporting", "dashboard", "end-user reporting", "self service"},
			"nlp":                   {"natural language processing", "text classification", "sentiment analysis", "langchain", "llm"},
			"cloud":                 {"aws", "azure", "gcp", "cloud computing", "s3", "ec2", "lambda"},
			"database":              {"mysql", "postgresql", "sql server", "mongodb", "nosql", "sql", "sqlite"},
			"automation":            {"power automate", "selenium", "scheduling", "windows task scheduler", "cron"},
			"financial analysis":    {"budgeting", "forecasting", "variance analysis", "financial modeling", "ap/ar"},
			"azure blob storage":    {"azure blob", "blob storage", "azure storage", "cloud storage", "data lake"},
			"power bi":              {"powerbi", "power-bi", "bi dashboard", "business intelligence dashboard"},
			"flair":                 {"flair system", "florida accounting", "state financial system"},
			"hmgp":                  {"hazard mitigation", "hazard mitigation grant program", "fema grant"},
			"grant management":      {"federal grants", "grant tracking", "grant reconciliation", "150 grants"},
			"data pipeline":         {"etl pipeline", "data ingestion", "automated pipeline", "python pipeline"},
			"reconciliation":        {"recon", "data reconciliation", "financial reconciliation", "source to target"},
			"anomaly detection":     {"outlier detection", "flag transactions", "transaction monitoring", "misallocation"},
			"azure":                 {"azure blob storage", "microsoft azure", "azure sql", "azure data"},
			"transfer memo":         {"transfer memos", "fund transfer", "grant transfer", "reallocation"},
			"bureau-wide":           {"bureau", "division-wide", "agency-wide"},
			"director":              {"bureau director", "division head", "executive", "leadership"},
			"governance":            {"data governance", "compliance", "audit"},
			"deduplication":         {"dedupe", "duplicate removal"},
			"catalog":               {"data catalog", "metadata"},
			"fccm":                  {"certified contract manager", "contract management"},
		},
		Roles: []RoleKeywords{
			{Label: "BI Developer", Keywords: []string{"power bi", "dashboard", "dax", "semantic model", "reporting", "kpi", "bi", "data visualization"}},
			{Label: "Data Analyst", Keywords: []string{"data analysis", "sql", "excel", "visualization", "analytics", "statistical", "insights"}},
			{Label: "Data Engineer", Keywords: []string{"etl", "pipeline", "data pipeline", "airflow", "spark", "data warehouse", "ingestion", "kafka"}},
			{Label: "Finance Analyst", Keywords: []string{"financial", "budget", "forecasting", "ap/ar", "accounting", "variance", "reconciliation"}},
			{Label: "ML Engineer", Keywords: []string{"machine learning", "ml", "pytorch", "tensorflow", "model", "nlp", "training", "deep learning"}},
			{Label: "Software Engineer", Keywords: []string{"api", "backend", "frontend", "rest", "flask", "javascript", "software", "microservices"}},
		},
		Categories: []CategoryKeywords{
			{Name: "Languages", Keywords: []string{"python", "sql", "java", "javascript", "r", "dax", "vba", "c++"}},
			{Name: "Databases", Keywords: []string{"mysql", "postgresql", "sql server", "mongodb", "snowflake", "sqlite", "database"}},
			{Name: "BI & Analytics", Keywords: []string{"power bi", "dashboard", "reporting", "visualization", "etl", "analytics", "kpi"}},
			{Name: "ML & AI", Keywords: []string{"machine learning", "ml", "nlp", "pytorch", "tensorflow", "scikit", "ai", "model"}},
			{Name: "Frameworks & APIs", Keywords: []string{"flask", "fastapi", "api", "rest", "streamlit", "dash", "next.js"}},
			{Name: "Cloud & DevOps", Keywords: []string{"aws", "azure", "gcp", "docker", "kubernetes", "cloud", "devops", "ci/cd"}},
			{Name: "Tools", Keywords: []string{"git", "selenium", "sharepoint", "automation"}},
		},
	}
}
