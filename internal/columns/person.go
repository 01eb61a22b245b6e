package columns

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
)

func registerPersonal(r *Registry) {
	r.Register("firstName", Independent(func(_ *rand.Rand) any {
		return faker.FirstName()
	}))
	r.Register("lastName", Independent(func(_ *rand.Rand) any {
		return faker.LastName()
	}))
	r.Register("email", Independent(func(_ *rand.Rand) any {
		return faker.Email()
	}))
	r.Register("phone", Independent(func(_ *rand.Rand) any {
		return faker.Phonenumber()
	}))
	// Date of birth for an adult between 18 and 70, ISO date.
	r.Register("dateOfBirth", Independent(func(rng *rand.Rand) any {
		age := uniformInt(rng, 18, 70)
		dob := time.Now().AddDate(-age, 0, -rng.Intn(365))
		return dob.Format("2006-01-02")
	}))
	r.Register("address", Independent(func(_ *rand.Rand) any {
		a := faker.GetRealAddress()
		return fmt.Sprintf("%s, %s, %s %s", a.Address, a.City, a.State, a.PostalCode)
	}))
}
