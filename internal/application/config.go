package application

// Config holds the form thresholds and service settings.
type Config struct {
	MinAge             int      `env:"APPLICATION_MIN_AGE" envDefault:"20"`
	MaxAge             int      `env:"APPLICATION_MAX_AGE" envDefault:"50"`
	MaxSpecialtyLength int      `env:"APPLICATION_MAX_SPECIALTY_LENGTH" envDefault:"50"`
	MinExperienceYears float64  `env:"APPLICATION_MIN_EXPERIENCE_YEARS" envDefault:"3"`
	MinPasswordSize    int      `env:"APPLICATION_MIN_PASSWORD_SIZE" envDefault:"10"`
	KnownSpecialties   []string `env:"APPLICATION_SPECIALTIES" envDefault:"engineer,scientist,psychologist" envSeparator:","`
	PasswordHashCost   int      `env:"APPLICATION_PASSWORD_HASH_COST" envDefault:"10"`
	ParallelValidation bool     `env:"APPLICATION_PARALLEL_VALIDATION" envDefault:"false"`
	MessagesFile       string   `env:"MESSAGES_FILE"`
}

// DefaultConfig returns the same values as the envDefault tags.
func DefaultConfig() Config {
	return Config{
		MinAge:             20,
		MaxAge:             50,
		MaxSpecialtyLength: 50,
		MinExperienceYears: 3,
		MinPasswordSize:    10,
		KnownSpecialties:   []string{"engineer", "scientist", "psychologist"},
		PasswordHashCost:   10,
	}
}
