package envgen

import "github.com/alecthomas/kong"

// Flags are the injector's command-line options. The defaults reproduce the
// paths the Angular build expects, so running without arguments is the norm.
type Flags struct {
	EnvFile string `name:"env-file" default:"./.env" help:"Path to the .env file to load"`
	Target  string `name:"target" default:"./src/environments/environment.ts" help:"Where the environment module is written"`
}

func ParseFlags(args []string) (Flags, error) {
	var flags Flags

	parser, err := kong.New(
		&flags,
		kong.Name("set-env"),
		kong.Description("Generate the Angular environment.ts file from .env and the process environment."),
	)
	if err != nil {
		return Flags{}, err
	}

	if _, err := parser.Parse(args); err != nil {
		return Flags{}, err
	}

	return flags, nil
}
