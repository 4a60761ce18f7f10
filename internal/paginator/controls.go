package paginator

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
)

const maxPageButtons = 5

// Button kinds in a control strip
const (
	ButtonPrev     = "prev"
	ButtonNext     = "next"
	ButtonPage     = "page"
	ButtonEllipsis = "ellipsis"
)

// Button is one affordance of the control strip. Ellipsis entries carry no page.
type Button struct {
	Kind     string `json:"kind"`
	Label    string `json:"label"`
	Page     int    `json:"page,omitempty"`
	Active   bool   `json:"active,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// ControlStrip is the rendered pagination control model
type ControlStrip struct {
	Hidden  bool     `json:"hidden"`
	Summary string   `json:"summary,omitempty"`
	Buttons []Button `json:"buttons,omitempty"`
}

// PageWindow returns the first and last numbered page buttons: up to five pages
// centred on current, shifted left when the end would pass totalPages
func PageWindow(current, totalPages int) (int, int) {
	start := current - maxPageButtons/2
	if start < 1 {
		start = 1
	}
	end := start + maxPageButtons - 1

	if end > totalPages {
		end = totalPages
		start = end - maxPageButtons + 1
		if start < 1 {
			start = 1
		}
	}
	return start, end
}

func buildStrip(current, totalPages, visible, filtered int) ControlStrip {
	if totalPages <= 1 {
		return ControlStrip{Hidden: true}
	}

	strip := ControlStrip{
		Summary: fmt.Sprintf("Showing %d of %d items (Page %d of %d)", visible, filtered, current, totalPages),
	}

	strip.Buttons = append(strip.Buttons, Button{
		Kind:     ButtonPrev,
		Label:    "« Prev",
		Disabled: current == 1,
	})

	start, end := PageWindow(current, totalPages)

	if start > 1 {
		strip.Buttons = append(strip.Buttons, pageButton(1, current))
		if start > 2 {
			strip.Buttons = append(strip.Buttons, Button{Kind: ButtonEllipsis, Label: "..."})
		}
	}

	for i := start; i <= end; i++ {
		strip.Buttons = append(strip.Buttons, pageButton(i, current))
	}

	if end < totalPages {
		if end < totalPages-1 {
			strip.Buttons = append(strip.Buttons, Button{Kind: ButtonEllipsis, Label: "..."})
		}
		strip.Buttons = append(strip.Buttons, pageButton(totalPages, current))
	}

	strip.Buttons = append(strip.Buttons, Button{
		Kind:     ButtonNext,
		Label:    "Next »",
		Disabled: current == totalPages,
	})

	return strip
}

func pageButton(page, current int) Button {
	return Button{
		Kind:   ButtonPage,
		Label:  strconv.Itoa(page),
		Page:   page,
		Active: page == current,
	}
}

var stripTemplate = template.Must(template.New("pagination").Parse(
	`<div id="pagination-controls" class="pagination-controls"{{if .Hidden}} style="display: none"{{end}}>` +
		`{{if not .Hidden}}<div class="pagination-info">{{.Summary}}</div><div class="pagination-buttons">` +
		`{{range .Buttons}}{{if eq .Kind "ellipsis"}}<span class="pagination-ellipsis">...</span>` +
		`{{else}}<button class="pagination-btn{{if .Active}} pagination-btn-active{{end}}"` +
		`{{if .Disabled}} disabled{{end}} data-page="{{if eq .Kind "page"}}{{.Page}}{{else}}{{.Kind}}{{end}}">{{.Label}}</button>` +
		`{{end}}{{end}}</div>{{end}}</div>`,
))

// Render writes the strip as an HTML fragment
func (s ControlStrip) Render(w io.Writer) error {
	return stripTemplate.Execute(w, s)
}
