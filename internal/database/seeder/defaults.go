package seeder

import "golang.org/x/crypto/bcrypt"

const (
	DemoRecruiterEmail = "recruiter@demo.jobboard.local"
	DemoCandidateEmail = "candidate@demo.jobboard.local"
	DemoPassword       = "demo-password"
)

func Defaults() []Seeder {
	return []Seeder{
		AccountsSeeder{HashCost: bcrypt.DefaultCost},
		JobsSeeder{RecruiterEmail: DemoRecruiterEmail},
	}
}
