// Package docs holds the static reference shown in the Documentation view.
package docs

import (
	"fmt"
	"strings"
)

// Link is a titled external reference.
type Link struct {
	Title string
	URL   string
}

// Task is a maintenance interval with its checklist.
type Task struct {
	Interval string
	Items    []string
}

// Section is one heading of the documentation page.
type Section struct {
	Title string
	Links []Link
	Tasks []Task
}

var quickLinks = []Link{
	{Title: "Solar Panel Basics", URL: "https://www.energy.gov/eere/solar/solar-energy-basics"},
	{Title: "Installation Guide", URL: "https://www.energy.gov/eere/solar/homeowners-guide-going-solar"},
	{Title: "Federal Tax Credits", URL: "https://www.energy.gov/eere/solar/homeowners-guide-federal-tax-credit-solar-photovoltaics"},
}

var maintenance = []Task{
	{Interval: "Monthly", Items: []string{"Check system performance", "Clean debris if necessary"}},
	{Interval: "Quarterly", Items: []string{"Detailed performance analysis", "Check for physical damage or wear"}},
	{Interval: "Annually", Items: []string{"Professional inspection", "Deep cleaning", "Inverter check"}},
}

// Sections returns the documentation content in display order.
func Sections() []Section {
	return []Section{
		{Title: "Quick Links", Links: append([]Link(nil), quickLinks...)},
		{Title: "Maintenance Schedule", Tasks: append([]Task(nil), maintenance...)},
	}
}

// Markdown renders every section as one markdown document.
func Markdown() string {
	var sb strings.Builder
	sb.WriteString("# Solar Industry Documentation\n")
	for _, s := range Sections() {
		fmt.Fprintf(&sb, "\n## %s\n\n", s.Title)
		for _, l := range s.Links {
			fmt.Fprintf(&sb, "- [%s](%s)\n", l.Title, l.URL)
		}
		for i, task := range s.Tasks {
			if i > 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "### %s\n\n", task.Interval)
			for _, item := range task.Items {
				fmt.Fprintf(&sb, "- %s\n", item)
			}
		}
	}
	return sb.String()
}
