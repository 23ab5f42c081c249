// Package catalog holds the immutable keyword and template tables the
// summarization engine scores against. Category and track selection iterate
// these tables, so adding a new entry never requires touching engine logic.
package catalog

// TechnicalSkills is the master skill catalog. Extraction preserves this
// order, not input order. Matching is substring-based, which means short
// entries ("AI", "SQL") can match inside longer tokens; that behavior is
// intentional and mirrored by the tests.
var TechnicalSkills = []string{
	// Programming languages
	"Python", "Java", "JavaScript", "TypeScript", "C#", "C++", "Go", "Ruby", "PHP", "Swift", "Kotlin", "Rust",
	// Frameworks & libraries
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "Spring", "ASP.NET", "Laravel",
	// Cloud platforms
	"AWS", "Azure", "GCP", "Google Cloud", "EC2", "S3", "Lambda", "DynamoDB", "CloudFormation",
	// DevOps tools
	"Docker", "Kubernetes", "Jenkins", "GitLab CI", "GitHub Actions", "Terraform", "Ansible", "Puppet",
	// Databases
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Cassandra", "Redis", "Oracle", "SQL Server",
	// Data science
	"Machine Learning", "AI", "Deep Learning", "TensorFlow", "PyTorch", "NLP", "Data Mining", "Big Data",
	// Other tech
	"Microservices", "RESTful API", "GraphQL", "Serverless", "CI/CD", "Agile", "Scrum",
}

// ManagementKeywords signal leadership and people-management experience.
var ManagementKeywords = []string{
	"lead", "leader", "leadership", "manage", "manager", "management", "team lead",
	"supervised", "directed", "coordinated", "head", "chief", "executive",
	"strategy", "strategic", "decision-making", "stakeholder", "mentor",
}

// TechnicalRoleKeywords signal hands-on technical roles.
var TechnicalRoleKeywords = []string{
	"engineer", "developer", "architect", "programmer", "devops",
	"sre", "sysadmin", "administrator", "analyst", "scientist",
	"consultant", "specialist", "technician", "tester", "qa",
}

// RoleTitles holds the per-tier titles of a role track.
type RoleTitles struct {
	Manager   string
	Principal string
	Lead      string
	Senior    string
	Base      string
	Junior    string
}

// RoleTrack is a specialized career track matched by skill membership.
type RoleTrack struct {
	Name   string
	Skills []string
	Titles RoleTitles
}

// RoleTracks in precedence order; the first track with any matching skill
// wins.
var RoleTracks = []RoleTrack{
	{
		Name:   "cloud",
		Skills: []string{"AWS", "Azure", "GCP", "EC2", "S3", "Lambda", "CloudFormation"},
		Titles: RoleTitles{
			Manager:   "Cloud Solutions Architect",
			Principal: "Principal Cloud Engineer",
			Lead:      "Lead Cloud Engineer",
			Senior:    "Senior Cloud Engineer",
			Base:      "Cloud Engineer",
			Junior:    "Junior Cloud Engineer",
		},
	},
	{
		Name:   "ai",
		Skills: []string{"Machine Learning", "AI", "Deep Learning", "TensorFlow", "PyTorch", "NLP", "Data Mining"},
		Titles: RoleTitles{
			Manager:   "Data Science Manager",
			Principal: "Principal Data Scientist",
			Lead:      "Lead Data Scientist",
			Senior:    "Senior Data Scientist",
			Base:      "Data Scientist",
			Junior:    "Junior Data Scientist",
		},
	},
	{
		Name:   "frontend",
		Skills: []string{"React", "Angular", "Vue", "JavaScript", "TypeScript", "HTML", "CSS"},
		Titles: RoleTitles{
			Manager:   "Frontend Engineering Manager",
			Principal: "Principal Frontend Engineer",
			Lead:      "Lead Frontend Developer",
			Senior:    "Senior Frontend Developer",
			Base:      "Frontend Developer",
			Junior:    "Junior Frontend Developer",
		},
	},
	{
		Name:   "backend",
		Skills: []string{"Java", "Spring", "Node.js", "Express", "Django", "Flask", "ASP.NET"},
		Titles: RoleTitles{
			Manager:   "Backend Engineering Manager",
			Principal: "Principal Backend Engineer",
			Lead:      "Lead Backend Developer",
			Senior:    "Senior Backend Developer",
			Base:      "Backend Developer",
			Junior:    "Junior Backend Developer",
		},
	},
	{
		Name:   "devops",
		Skills: []string{"Docker", "Kubernetes", "Jenkins", "GitLab CI", "GitHub Actions", "Terraform", "Ansible"},
		Titles: RoleTitles{
			Manager:   "DevOps Manager",
			Principal: "Principal DevOps Engineer",
			Lead:      "Lead DevOps Engineer",
			Senior:    "Senior DevOps Engineer",
			Base:      "DevOps Engineer",
			Junior:    "Junior DevOps Engineer",
		},
	},
}

// GenericTitles is the software-engineering fallback track used when no
// specialized track matches.
var GenericTitles = RoleTitles{
	Manager:   "Engineering Manager",
	Principal: "Principal Software Engineer",
	Lead:      "Technical Team Lead",
	Senior:    "Senior Software Engineer",
	Base:      "Software Engineer",
	Junior:    "Junior Software Engineer",
}
