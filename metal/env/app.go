package env

const local = "local"
const development = "development"
const production = "production"

// AppEnvironment mirrors the NODE_ENV style mode the front-end is built and served with.
type AppEnvironment struct {
	Name string `validate:"omitempty,max=120"`
	Type string `validate:"omitempty,max=40"`
}

// IsProduction compares NODE_ENV verbatim: "Production" is not production.
func (e AppEnvironment) IsProduction() bool {
	return e.Type == production
}

func (e AppEnvironment) IsLocal() bool {
	return e.Type == local || e.Type == development || e.Type == ""
}
