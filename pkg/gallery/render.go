package gallery

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

//go:embed gallery.tmpl
var galleryTemplate string

// galleryView is the data handed to the gallery template.
type galleryView struct {
	TotalItems  int
	TotalYears  int
	TotalMonths int
	Years       []yearView
}

type yearView struct {
	Year       int
	ItemCount  int
	MonthCount int
	Months     []monthView
}

type monthView struct {
	Name   string
	Count  int
	Videos int
	Photos int
	Open   bool
	Cards  []cardView
}

type cardView struct {
	IsVideo   bool
	Path      string
	DateLabel string
}

// plural renders a count with a naively pluralized noun ("1 video",
// "3 photos").
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Render emits the complete offline gallery page for a grouped index.
// The first month section renders pre-expanded; the rest start collapsed
// and toggle via the inline accordion script.
func Render(groups []YearGroup) (string, error) {
	view := buildView(groups)

	tmpl, err := template.New("gallery").Funcs(template.FuncMap{
		"plural": plural,
	}).Parse(galleryTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse gallery template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render gallery: %w", err)
	}

	return buf.String(), nil
}

func buildView(groups []YearGroup) galleryView {
	view := galleryView{TotalYears: len(groups)}

	first := true
	for _, yg := range groups {
		yv := yearView{
			Year:       yg.Year,
			ItemCount:  yg.ItemCount(),
			MonthCount: len(yg.Months),
		}
		view.TotalItems += yv.ItemCount
		view.TotalMonths += yv.MonthCount

		for _, mg := range yg.Months {
			mv := monthView{
				Name:  mg.Month.String(),
				Count: len(mg.Items),
				Open:  first,
			}
			first = false

			for _, item := range mg.Items {
				if item.IsVideo() {
					mv.Videos++
				} else {
					mv.Photos++
				}
				mv.Cards = append(mv.Cards, cardView{
					IsVideo:   item.IsVideo(),
					Path:      item.LocalPath,
					DateLabel: item.CapturedAt.Format("January 2, 2006"),
				})
			}

			yv.Months = append(yv.Months, mv)
		}

		view.Years = append(view.Years, yv)
	}

	return view
}
