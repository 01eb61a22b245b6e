package columns

import (
	"fmt"
	"math/rand"
)

var loanIntents = []string{
	"PERSONAL", "EDUCATION", "MEDICAL", "VENTURE",
	"HOMEIMPROVEMENT", "DEBTCONSOLIDATION",
}

var educationLevels = []string{
	"High School", "Associate", "Bachelor", "Master", "Doctorate",
}

var homeOwnership = []string{"RENT", "OWN", "MORTGAGE", "OTHER"}

// The loan-applicant column group. person_emp_exp, cb_person_cred_hist_length
// and loan_percent_income are the dependent rules: each reads prerequisite
// values generated earlier in the same record.
func registerCredit(r *Registry) {
	r.Register("person_age", Independent(func(rng *rand.Rand) any {
		return uniformInt(rng, 18, 70)
	}))
	r.Register("person_gender", Independent(func(rng *rand.Rand) any {
		return choice(rng, []string{"male", "female"})
	}))
	r.Register("person_education", Independent(func(rng *rand.Rand) any {
		return choice(rng, educationLevels)
	}))
	// Annual income in [20000, 250000], two decimal places.
	r.Register("person_income", Independent(func(rng *rand.Rand) any {
		return uniformFloat2(rng, 20000, 250000)
	}))
	r.Register("person_home_ownership", Independent(func(rng *rand.Rand) any {
		return choice(rng, homeOwnership)
	}))

	// Years of employment experience: uniform in [0, age-16], never negative.
	r.Register("person_emp_exp", Dependent{
		Inputs: []string{"person_age"},
		Fn: func(rng *rand.Rand, inputs map[string]any) (any, error) {
			age, err := intInput(inputs, "person_age")
			if err != nil {
				return nil, err
			}
			hi := age - 16
			if hi < 0 {
				hi = 0
			}
			return uniformInt(rng, 0, hi), nil
		},
	})

	// Credit history length in years: uniform in [1, min(age-1, 35)]. The
	// built-in age rule keeps age >= 18, so the range cannot collapse; if a
	// prerequisite ever lands outside that domain this is a generation fault,
	// not something to clamp over.
	r.Register("cb_person_cred_hist_length", Dependent{
		Inputs: []string{"person_age"},
		Fn: func(rng *rand.Rand, inputs map[string]any) (any, error) {
			age, err := intInput(inputs, "person_age")
			if err != nil {
				return nil, err
			}
			hi := age - 1
			if hi > 35 {
				hi = 35
			}
			if hi < 1 {
				return nil, fmt.Errorf("credit history range collapsed: person_age=%d", age)
			}
			return uniformInt(rng, 1, hi), nil
		},
	})

	r.Register("credit_score", Independent(func(rng *rand.Rand) any {
		return uniformInt(rng, 300, 850)
	}))
	// Requested loan amount in [500, 35000], two decimal places.
	r.Register("loan_amnt", Independent(func(rng *rand.Rand) any {
		return uniformFloat2(rng, 500, 35000)
	}))
	// Interest rate in [5.42, 23.22], two decimal places.
	r.Register("loan_int_rate", Independent(func(rng *rand.Rand) any {
		return uniformFloat2(rng, 5.42, 23.22)
	}))
	r.Register("loan_intent", Independent(func(rng *rand.Rand) any {
		return choice(rng, loanIntents)
	}))

	// Loan amount as a share of income, rounded to two decimal places.
	r.Register("loan_percent_income", Dependent{
		Inputs: []string{"loan_amnt", "person_income"},
		Fn: func(rng *rand.Rand, inputs map[string]any) (any, error) {
			amnt, err := floatInput(inputs, "loan_amnt")
			if err != nil {
				return nil, err
			}
			income, err := floatInput(inputs, "person_income")
			if err != nil {
				return nil, err
			}
			if income <= 0 {
				return nil, fmt.Errorf("loan percent income undefined: person_income=%v", income)
			}
			return round2(amnt / income), nil
		},
	})

	r.Register("previous_loan_defaults_on_file", Independent(func(rng *rand.Rand) any {
		return choice(rng, []string{"Yes", "No"})
	}))
}
