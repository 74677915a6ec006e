package dto

type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

type UpdateCandidateRequest struct {
	Bio               *string   `json:"bio"`
	Skills            *[]string `json:"skills"`
	ExperienceYears   *int      `json:"experience_years"`
	Education         *string   `json:"education"`
	DesiredSalaryMin  *float64  `json:"desired_salary_min"`
	DesiredSalaryMax  *float64  `json:"desired_salary_max"`
	SalaryCurrency    *string   `json:"salary_currency"`
	Location          *string   `json:"location"`
	IsAvailable       *bool     `json:"is_available"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	LinkedinURL       *string   `json:"linkedin_url"`
	GithubURL         *string   `json:"github_url"`
	PortfolioURL      *string   `json:"portfolio_url"`
}

type UpdateRecruiterRequest struct {
	CompanyName        *string `json:"company_name"`
	CompanyDescription *string `json:"company_description"`
	CompanyLogoURL     *string `json:"company_logo_url"`
	Website            *string `json:"website"`
	CompanySize        *string `json:"company_size"`
	Industry           *string `json:"industry"`
	Location           *string `json:"location"`
}
