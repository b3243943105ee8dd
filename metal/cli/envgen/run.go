package envgen

import (
	"fmt"
	"sort"

	"github.com/Ferie/angular-dot-env-environments/metal/env"
	"github.com/Ferie/angular-dot-env-environments/pkg/cli"
	"github.com/joho/godotenv"
)

// Run loads envPath, renders the environment module and writes it. Nothing
// is written when the file cannot be loaded.
func Run(envPath string, g Generator) error {
	cli.Magenta("Parsing environment file (.env)... ")

	if err := godotenv.Load(envPath); err != nil {
		cli.Errorln("ERROR")

		return fmt.Errorf("load environment from %s: %w", envPath, err)
	}

	cli.Successln("DONE")

	parsed, err := godotenv.Read(envPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", envPath, err)
	}

	keys := make([]string, 0, len(parsed))
	for key := range parsed {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		cli.Cyanln(key + "=" + parsed[key])
	}

	document, err := g.Render(env.NewFrontendEnvironment())
	if err != nil {
		return err
	}

	cli.Magentaln("The file 'environment.ts' will be written with the following content:")
	cli.Gray(document)

	if err := g.Write(document); err != nil {
		cli.Errorln("There were an error in writing the file")

		return err
	}

	cli.Magentaln(fmt.Sprintf("Angular 'environment.ts' file generated correctly at '%s'", g.TargetPath))

	return nil
}
