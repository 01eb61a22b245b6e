package columns

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
)

var departments = []string{
	"Engineering", "Sales", "Marketing", "HR", "Finance", "Operations",
}

var companySuffixes = []string{
	"Inc", "LLC", "Group", "Labs", "Holdings", "Partners", "Systems", "Ventures",
}

var jobTitles = []string{
	"Software Engineer", "Data Analyst", "Product Manager", "Account Executive",
	"Marketing Specialist", "HR Coordinator", "Financial Analyst",
	"Operations Manager", "Customer Success Manager", "QA Engineer",
	"DevOps Engineer", "UX Designer", "Business Analyst", "Sales Director",
	"Technical Writer", "Recruiter", "Controller", "Support Specialist",
}

func registerBusiness(r *Registry) {
	r.Register("companyName", Independent(func(rng *rand.Rand) any {
		return faker.LastName() + " " + choice(rng, companySuffixes)
	}))
	r.Register("jobTitle", Independent(func(rng *rand.Rand) any {
		return choice(rng, jobTitles)
	}))
	r.Register("department", Independent(func(rng *rand.Rand) any {
		return choice(rng, departments)
	}))
	// Annual salary in [40000, 150000], two decimal places.
	r.Register("salary", Independent(func(rng *rand.Rand) any {
		return uniformFloat2(rng, 40000, 150000)
	}))
	// Employment start date within the last ten years, ISO date.
	r.Register("startDate", Independent(func(rng *rand.Rand) any {
		start := time.Now().AddDate(0, 0, -rng.Intn(10*365))
		return start.Format("2006-01-02")
	}))
}
