package web

import (
	"embed"
	"encoding/base64"
	"html/template"

	"github.com/inodb/vibe-dna/internal/pipeline"
	"github.com/inodb/vibe-dna/internal/render"
	"github.com/inodb/vibe-dna/internal/sequence"
)

// PageTitle is the heading shown on the form page.
const PageTitle = "DNA Sequence Visualization"

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// chartView is one chart embedded in the page.
type chartView struct {
	Title string
	Src   template.URL
}

type summaryView struct {
	Length     int
	Codons     int
	Complement string
}

type pageData struct {
	Title   string
	Input   string
	Error   string
	Charts  []chartView
	Summary *summaryView
}

// page collects pipeline output for one request. It implements
// pipeline.Display.
type page struct {
	data pageData
}

var _ pipeline.Display = (*page)(nil)

func newPage(input string) *page {
	return &page{data: pageData{Title: PageTitle, Input: input}}
}

func (p *page) DisplayError(message string) {
	p.data.Error = message
	p.data.Charts = nil
	p.data.Summary = nil
}

func (p *page) RenderChart(img render.Image) {
	p.data.Charts = append(p.data.Charts, chartView{
		Title: img.Title,
		Src:   template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(img.PNG)),
	})
}

func (p *page) setSummary(res *pipeline.Result) {
	p.data.Summary = &summaryView{
		Length:     res.Sequence.Len(),
		Codons:     len(res.Codons),
		Complement: sequence.ComplementStrand(res.Sequence),
	}
}
