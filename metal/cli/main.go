package main

import (
	"os"

	"github.com/Ferie/angular-dot-env-environments/metal/cli/envgen"
	"github.com/Ferie/angular-dot-env-environments/pkg/cli"
)

func main() {
	flags, err := envgen.ParseFlags(os.Args[1:])
	if err != nil {
		cli.Errorln(err.Error())
		os.Exit(1)
	}

	generator, err := envgen.NewGenerator(flags.Target)
	if err != nil {
		cli.Errorln(err.Error())
		os.Exit(1)
	}

	if err := envgen.Run(flags.EnvFile, generator); err != nil {
		cli.Errorln(err.Error())
		os.Exit(1)
	}
}
