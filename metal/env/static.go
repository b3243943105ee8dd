package env

const DefaultStaticDir = "./dist/riccardo"
const DefaultFallbackFile = "index.html"

// StaticEnvironment points at the pre-built Angular bundle served by the host.
type StaticEnvironment struct {
	Dir      string `validate:"required"`
	Fallback string `validate:"required,excludesall=/"`
}
