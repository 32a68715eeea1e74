package engine

import (
	_ "embed"
	"io"
	"strings"
	"text/template"

	"github.com/tatianab/abyssus/internal/encounter"
	"github.com/tatianab/abyssus/internal/models"
)

//go:embed narrative/intro.tmpl
var introText string

//go:embed narrative/help.txt
var helpText string

//go:embed narrative/encounter.txt
var encounterText string

//go:embed narrative/victory.txt
var victoryText string

//go:embed narrative/failure.txt
var failureText string

//go:embed narrative/summary.tmpl
var summaryText string

var (
	introTemplate   = template.Must(template.New("intro").Parse(introText))
	summaryTemplate = template.Must(template.New("summary").
			Funcs(template.FuncMap{"join": strings.Join}).
			Parse(summaryText))
)

// renderIntro writes the opening narrative.
func renderIntro(w io.Writer, title, final string) error {
	return introTemplate.Execute(w, struct{ Title, Final string }{title, final})
}

// renderEncounter writes the entry block followed by the verdict. It is
// only called with an outcome Evaluate has already produced.
func renderEncounter(w io.Writer, outcome encounter.Outcome) error {
	verdict := failureText
	if outcome == encounter.Success {
		verdict = victoryText
	}
	_, err := io.WriteString(w, encounterText+verdict)
	return err
}

type summaryData struct {
	models.Summary
	Title string
}

func renderSummary(w io.Writer, title string, s models.Summary) error {
	return summaryTemplate.Execute(w, summaryData{Summary: s, Title: title})
}
