// Package pretty renders trajectories and population summaries as styled
// terminal tables.
package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"herd/core/stage"
	"herd/core/star"
	"herd/internal/output"
)

// Options control the rendering.
type Options struct {
	// Bullet prefixes each star title.
	Bullet string
	// Arrow joins the entry and exit value of a quantity within one stage,
	// and the stages of a summary path.
	Arrow string
	// ShowSpin adds the angular velocity column.
	ShowSpin bool
	// ColumnGap is the number of spaces between table columns.
	ColumnGap int
}

// DefaultOptions is the look used by --output pretty.
var DefaultOptions = Options{
	Bullet:    "*",
	Arrow:     "->",
	ShowSpin:  false,
	ColumnGap: 2,
}

var (
	colorMS       = lipgloss.Color("#5B8DEF")
	colorGiant    = lipgloss.Color("#FFB454")
	colorHelium   = lipgloss.Color("#C792EA")
	colorDwarf    = lipgloss.Color("#EEEEEE")
	colorCompact  = lipgloss.Color("#8C8C8C")
	colorDanger   = lipgloss.Color("#FF5252")
	colorMuted    = lipgloss.Color("#636363")
	colorHeadline = lipgloss.Color("#00BFFF")
)

var (
	styleTitle  = lipgloss.NewStyle().Foreground(colorHeadline).Bold(true)
	styleHeader = lipgloss.NewStyle().Bold(true).Underline(true)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted)
	styleError  = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	stylePlain  = lipgloss.NewStyle()
)

// StageStyle colours a stage by family.
func StageStyle(s stage.Stage) lipgloss.Style {
	c := colorCompact
	switch {
	case s.IsMS():
		c = colorMS
	case s.IsHeStar():
		c = colorHelium
	case s.IsWD():
		c = colorDwarf
	case s < stage.HeMS:
		c = colorGiant
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

// Segment is the part of a trajectory spent in one stage.
type Segment struct {
	Stage  stage.Stage
	First  star.TrackPoint
	Last   star.TrackPoint
	Points int
	End    float64 // age of the next segment's first point, or Last.Age
}

// Segments splits points into runs of equal stage.
func Segments(points []star.TrackPoint) []Segment {
	var out []Segment
	for i, p := range points {
		if i == 0 || p.Stage != points[i-1].Stage {
			out = append(out, Segment{Stage: p.Stage, First: p})
		}
		seg := &out[len(out)-1]
		seg.Last = p
		seg.End = p.Age
		seg.Points++
	}
	for i := 0; i+1 < len(out); i++ {
		out[i].End = out[i+1].First.Age
	}
	return out
}

// FormatAge renders an age or duration given in Myr.
func FormatAge(myr float64) string {
	switch {
	case myr >= 1000:
		return humanize.FormatFloat("#,###.##", myr/1000) + " Gyr"
	case myr >= 1:
		return humanize.FormatFloat("#,###.#", myr) + " Myr"
	case myr > 0:
		return humanize.FormatFloat("#,###.#", myr*1000) + " kyr"
	}
	return "0 yr"
}

// sig renders v with four significant digits.
func sig(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

type cell struct {
	text  string
	style lipgloss.Style
}

func plain(s string) cell { return cell{text: s, style: stylePlain} }

// table aligns rows on visible width; styling is applied after padding.
func table(header []string, rows [][]cell, gap int) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i, c := range r {
			if w := lipgloss.Width(c.text); w > widths[i] {
				widths[i] = w
			}
		}
	}
	pad := strings.Repeat(" ", gap)
	var b strings.Builder
	line := func(cells []cell) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			text := c.text
			if i < len(cells)-1 {
				text += strings.Repeat(" ", widths[i]-lipgloss.Width(text))
			}
			parts[i] = c.style.Render(text)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, pad), " "))
		b.WriteByte('\n')
	}
	hs := make([]cell, len(header))
	for i, h := range header {
		hs[i] = cell{text: h, style: styleHeader}
	}
	line(hs)
	for _, r := range rows {
		line(r)
	}
	return b.String()
}

// RenderTrack prints one star: a title line, one table row per stage and
// the final state.
func RenderTrack(id string, points []star.TrackPoint, opt Options) string {
	if opt.Arrow == "" {
		opt.Arrow = DefaultOptions.Arrow
	}
	if opt.ColumnGap <= 0 {
		opt.ColumnGap = DefaultOptions.ColumnGap
	}
	var b strings.Builder
	if len(points) == 0 {
		fmt.Fprintf(&b, "%s %s\n", styleTitle.Render(strings.TrimSpace(opt.Bullet+" "+id)), styleMuted.Render("(no points)"))
		return b.String()
	}
	first, last := points[0], points[len(points)-1]
	fmt.Fprintf(&b, "%s %s\n",
		styleTitle.Render(strings.TrimSpace(opt.Bullet+" "+id)),
		styleMuted.Render(fmt.Sprintf("M0 %s Msun  Z %s  %s points", sig(first.Mass), sig(first.Metallicity), humanize.Comma(int64(len(points))))),
	)

	header := []string{"stage", "from", "span", "mass", "luminosity", "radius", "Teff"}
	if opt.ShowSpin {
		header = append(header, "spin")
	}
	var rows [][]cell
	for _, seg := range Segments(points) {
		r := []cell{
			{text: seg.Stage.String(), style: StageStyle(seg.Stage)},
			plain(FormatAge(seg.First.Age)),
			plain(FormatAge(seg.End - seg.First.Age)),
			plain(sig(seg.First.Mass) + opt.Arrow + sig(seg.Last.Mass)),
			plain(sig(seg.First.Luminosity) + opt.Arrow + sig(seg.Last.Luminosity)),
			plain(sig(seg.First.Radius) + opt.Arrow + sig(seg.Last.Radius)),
			plain(humanize.Comma(int64(seg.First.Temperature)) + " K"),
		}
		if opt.ShowSpin {
			r = append(r, plain(sig(seg.Last.AngularVelocity)))
		}
		rows = append(rows, r)
	}
	b.WriteString(table(header, rows, opt.ColumnGap))
	fmt.Fprintf(&b, "%s %s at %s, %s Msun\n",
		styleMuted.Render("ends as"), StageStyle(last.Stage).Render(last.Stage.String()),
		FormatAge(last.Age), sig(last.Mass))
	return b.String()
}

// RenderSummaries prints one table row per star.
func RenderSummaries(list []output.Summary, opt Options) string {
	if opt.Arrow == "" {
		opt.Arrow = DefaultOptions.Arrow
	}
	if opt.ColumnGap <= 0 {
		opt.ColumnGap = DefaultOptions.ColumnGap
	}
	header := []string{"star", "M0", "fate", "age", "mass", "steps", "path"}
	var rows [][]cell
	for _, s := range list {
		path := make([]string, len(s.Stages))
		for i, st := range s.Stages {
			path[i] = st.String()
		}
		r := []cell{
			plain(s.StarID),
			plain(sig(s.InitialMass)),
			{text: s.Final.Stage.String(), style: StageStyle(s.Final.Stage)},
			plain(FormatAge(s.Final.Age)),
			plain(sig(s.Final.Mass)),
			plain(humanize.Comma(int64(s.Steps))),
			plain(strings.Join(path, opt.Arrow)),
		}
		if s.Err != nil {
			r[len(r)-1] = cell{text: "error: " + s.Err.Error(), style: styleError}
		}
		rows = append(rows, r)
	}
	return table(header, rows, opt.ColumnGap)
}
