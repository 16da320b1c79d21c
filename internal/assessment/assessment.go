// Package assessment implements the career-assessment recommendation mapper:
// a pure lookup over five fixed multiple-choice questions. Given the selected
// options it aggregates role, skill and industry suggestions from static
// tables, deduplicates them and caps each list. No state, no randomness.
package assessment

// Question is one step of the assessment with its fixed option set.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Result is the aggregated recommendation for a completed assessment.
type Result struct {
	RecommendedRoles []string `json:"recommendedRoles"`
	Skills           []string `json:"skills"`
	Industries       []string `json:"industries"`
	Advice           string   `json:"advice"`
}

const (
	maxRoles      = 5
	maxSkills     = 5
	maxIndustries = 3

	// industryQuestion is the index of the question whose answer drives
	// the advice string.
	industryQuestion = 3

	defaultAdvice = "Consider developing both technical and soft skills to advance your career."
)

// Questions returns the fixed question set in presentation order.
func Questions() []Question {
	return []Question{
		{
			ID:       1,
			Question: "What type of work environment do you thrive in?",
			Options:  []string{"Remote/WFH", "Office-based", "Hybrid", "Field work", "Flexible"},
		},
		{
			ID:       2,
			Question: "Which aspects of work motivate you the most?",
			Options:  []string{"Creative freedom", "Financial rewards", "Learning opportunities", "Work-life balance", "Career growth"},
		},
		{
			ID:       3,
			Question: "What are your strongest soft skills?",
			Options:  []string{"Communication", "Leadership", "Problem-solving", "Teamwork", "Time management"},
		},
		{
			ID:       4,
			Question: "Which industry interests you the most?",
			Options:  []string{"Technology", "Healthcare", "Finance", "Education", "Creative arts"},
		},
		{
			ID:       5,
			Question: "What is your preferred work style?",
			Options:  []string{"Independent work", "Team collaboration", "Project-based", "Client-facing", "Research-oriented"},
		},
	}
}

var roleMappings = map[string][]string{
	// work environment
	"Remote/WFH":   {"Digital Nomad", "Freelancer", "Remote Developer"},
	"Office-based": {"Corporate Manager", "Office Administrator", "Team Leader"},
	"Hybrid":       {"Project Manager", "Consultant", "Hybrid Coordinator"},
	"Field work":   {"Field Technician", "Sales Representative", "Construction Manager"},
	"Flexible":     {"Entrepreneur", "Consultant", "Freelance Designer"},

	// motivation
	"Creative freedom":       {"Designer", "Artist", "Content Creator"},
	"Financial rewards":      {"Investment Banker", "Sales Executive", "Financial Advisor"},
	"Learning opportunities": {"Researcher", "Academic", "Training Specialist"},
	"Work-life balance":      {"Human Resources", "School Teacher", "Wellness Coach"},
	"Career growth":          {"Management Trainee", "Tech Lead", "Executive"},

	// soft skills
	"Communication":   {"Public Relations", "Marketing", "Customer Success"},
	"Leadership":      {"Team Lead", "Department Head", "Executive"},
	"Problem-solving": {"Engineer", "Data Scientist", "Product Manager"},
	"Teamwork":        {"HR Specialist", "Project Coordinator", "Team Manager"},
	"Time management": {"Operations Manager", "Executive Assistant", "Event Planner"},

	// industry
	"Technology":    {"Software Developer", "Data Analyst", "UX Designer"},
	"Healthcare":    {"Doctor", "Nurse", "Medical Researcher"},
	"Finance":       {"Accountant", "Financial Analyst", "Risk Manager"},
	"Education":     {"Teacher", "Academic Advisor", "Curriculum Developer"},
	"Creative arts": {"Graphic Designer", "Writer", "Art Director"},

	// work style
	"Independent work":   {"Writer", "Researcher", "Freelancer"},
	"Team collaboration": {"Team Lead", "Scrum Master", "HR Business Partner"},
	"Project-based":      {"Project Manager", "Consultant", "Contractor"},
	"Client-facing":      {"Account Manager", "Sales Representative", "Customer Success"},
	"Research-oriented":  {"Scientist", "Data Analyst", "Market Researcher"},
}

var skillMappings = map[string][]string{
	"Remote/WFH":        {"Time Management", "Self-discipline", "Digital Communication"},
	"Office-based":      {"Team Collaboration", "Corporate Etiquette", "Presentations"},
	"Creative freedom":  {"Design Thinking", "Creativity", "Visual Communication"},
	"Financial rewards": {"Negotiation", "Financial Analysis", "Sales Techniques"},
	"Problem-solving":   {"Critical Thinking", "Data Analysis", "Decision Making"},
	"Technology":        {"Programming", "Cloud Computing", "Agile Methodology"},
	"Healthcare":        {"Medical Knowledge", "Patient Care", "Health Regulations"},
	"Communication":     {"Public Speaking", "Active Listening", "Writing"},
}

var adviceMappings = map[string]string{
	"Technology":    "Consider learning emerging technologies like AI and blockchain to stay competitive.",
	"Healthcare":    "Specializing in a medical niche can increase your career opportunities.",
	"Finance":       "Certifications like CFA or CPA can significantly boost your career.",
	"Education":     "Continuous learning and pedagogical training are essential in this field.",
	"Creative arts": "Building a strong portfolio is crucial for success in creative fields.",
}

// Generate maps answers (question index → selected option) to a Result.
// Answers are visited in question order so the output is deterministic;
// unknown options simply contribute nothing. Empty aggregations fall back
// to fixed defaults.
func Generate(answers map[int]string) Result {
	var roles []string
	var skills []string
	var industries []string

	seenRoles := make(map[string]struct{})
	seenSkills := make(map[string]struct{})

	for i := range Questions() {
		answer, ok := answers[i]
		if !ok {
			continue
		}
		for _, role := range roleMappings[answer] {
			if _, dup := seenRoles[role]; dup {
				continue
			}
			seenRoles[role] = struct{}{}
			roles = append(roles, role)
		}
		for _, skill := range skillMappings[answer] {
			if _, dup := seenSkills[skill]; dup {
				continue
			}
			seenSkills[skill] = struct{}{}
			skills = append(skills, skill)
		}
		if _, ok := adviceMappings[answer]; ok {
			industries = append(industries, answer)
		}
	}

	if len(roles) > maxRoles {
		roles = roles[:maxRoles]
	}
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	if len(industries) > maxIndustries {
		industries = industries[:maxIndustries]
	}

	advice := defaultAdvice
	if a, ok := adviceMappings[answers[industryQuestion]]; ok {
		advice = a
	}

	if len(roles) == 0 {
		roles = []string{"Project Manager", "UX Designer", "Data Analyst"}
	}
	if len(skills) == 0 {
		skills = []string{"Agile Methodology", "User Research", "Data Visualization"}
	}
	if len(industries) == 0 {
		industries = []string{"Technology", "Finance", "Healthcare"}
	}

	return Result{
		RecommendedRoles: roles,
		Skills:           skills,
		Industries:       industries,
		Advice:           advice,
	}
}
