package envgen

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Ferie/angular-dot-env-environments/metal/env"
	"github.com/Masterminds/sprig/v3"
)

const DefaultTargetPath = "./src/environments/environment.ts"

const templateName = "environment.ts.tmpl"

//go:embed templates/environment.ts.tmpl
var templateFS embed.FS

// Generator renders the Angular environment module and writes it to TargetPath.
type Generator struct {
	TargetPath string
	template   *template.Template
}

func NewGenerator(targetPath string) (Generator, error) {
	tmpl, err := template.New(templateName).
		Funcs(sprig.TxtFuncMap()).
		ParseFS(templateFS, "templates/"+templateName)

	if err != nil {
		return Generator{}, fmt.Errorf("parse %s: %w", templateName, err)
	}

	return Generator{TargetPath: targetPath, template: tmpl}, nil
}

// Render produces the TypeScript document. Values are emitted as single
// quoted string literals.
func (g Generator) Render(values env.FrontendEnvironment) (string, error) {
	if g.template == nil {
		return "", fmt.Errorf("generator has no template, use NewGenerator")
	}

	var buf bytes.Buffer
	if err := g.template.ExecuteTemplate(&buf, templateName, values); err != nil {
		return "", fmt.Errorf("render %s: %w", templateName, err)
	}

	return buf.String(), nil
}

// Write replaces the target file with document, creating its directory.
func (g Generator) Write(document string) error {
	if strings.TrimSpace(g.TargetPath) == "" {
		return fmt.Errorf("target path must be provided")
	}

	if err := os.MkdirAll(filepath.Dir(g.TargetPath), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", g.TargetPath, err)
	}

	if err := os.WriteFile(g.TargetPath, []byte(document), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", g.TargetPath, err)
	}

	return nil
}
