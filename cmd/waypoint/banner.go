// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/common-nighthawk/go-figure"
	"golang.org/x/term"

	"rivaas.dev/waypoint/router/route"
)

// bannerInfo is what the serve banner shows besides the routes.
type bannerInfo struct {
	Name    string
	Version string
	Addr    string
	Metrics string // Empty when disabled
	Tracing string // Provider name
}

var (
	methodColors = map[string]string{
		"GET":     "10",
		"POST":    "12",
		"PUT":     "11",
		"DELETE":  "9",
		"PATCH":   "13",
		"HEAD":    "14",
		"OPTIONS": "7",
	}
	gradientColors = []string{"12", "14", "10", "11"}
)

// colorWriter downsamples ANSI sequences to what w supports. Without
// color, every sequence is stripped.
func colorWriter(w io.Writer, color bool) *colorprofile.Writer {
	cpw := colorprofile.NewWriter(w, os.Environ())
	if !color {
		cpw.Profile = colorprofile.NoTTY
	}

	return cpw
}

func printBanner(w io.Writer, info bannerInfo, routes []*route.Route, color bool) {
	cw := colorWriter(w, color)

	var art strings.Builder
	for _, line := range figure.NewFigure(info.Name, "", false).Slicify() {
		if strings.TrimSpace(line) == "" {
			art.WriteString("\n")
			continue
		}
		for i, char := range line {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(gradientColors[i%len(gradientColors)])).Bold(true)
			art.WriteString(style.Render(string(char)))
		}
		art.WriteString("\n")
	}

	category := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(14).PaddingLeft(2)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	disabled := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	addr := info.Addr
	if strings.HasPrefix(addr, ":") {
		addr = "0.0.0.0" + addr
	}

	var out strings.Builder
	out.WriteString(category.Render("Service") + "\n")
	out.WriteString(label.Render("Version:") + "  " + value.Render(info.Version) + "\n")
	out.WriteString(label.Render("Address:") + "  " + value.Render("http://"+addr) + "\n")
	out.WriteString("\n" + category.Render("Observability") + "\n")
	if info.Metrics != "" {
		out.WriteString(label.Render("Metrics:") + "  " + value.Render("http://"+addr+info.Metrics) + "\n")
	} else {
		out.WriteString(label.Render("Metrics:") + "  " + disabled.Render("Disabled") + "\n")
	}
	out.WriteString(label.Render("Tracing:") + "  " + value.Render(info.Tracing) + "\n")

	fmt.Fprintln(cw)
	fmt.Fprint(cw, art.String())
	fmt.Fprintln(cw)
	fmt.Fprint(cw, out.String())
	if len(routes) > 0 {
		fmt.Fprintln(cw)
		renderRoutesTable(cw, routes, color, 80)
	}
	fmt.Fprintln(cw)
}

// renderRoutesTable writes routes as a bordered table no wider than the
// terminal behind w, when there is one.
func renderRoutesTable(w io.Writer, routes []*route.Route, color bool, width int) {
	rows := make([][]string, 0, len(routes))
	minWidth := 2 + 3 + 8 + len("Methods") + len("Name") + len("Pattern") + len("View")
	for _, rt := range routes {
		methods := strings.Join(rt.Methods(), "|")
		styled := methods
		if color && len(rt.Methods()) == 1 {
			if c, ok := methodColors[methods]; ok {
				styled = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true).Render(methods)
			}
		}
		pattern := rt.Raw()
		if rt.Err() != nil {
			pattern += " (invalid)"
		}
		view, _ := rt.View().(string)
		if view == "" {
			view = "-"
		}
		minWidth = max(minWidth, 2+3+8+len(methods)+len(rt.Name())+len(pattern)+len(view))
		rows = append(rows, []string{rt.Name(), styled, pattern, view})
	}

	tableWidth := max(minWidth, width)
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			tableWidth = min(tableWidth, tw)
		}
	}
	tableWidth = max(60, tableWidth)

	border := lipgloss.NewStyle()
	if color {
		border = border.Foreground(lipgloss.Color("240"))
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == 0 && color {
				style = style.Bold(true).Foreground(lipgloss.Color("230"))
			}

			return style
		}).
		Headers("Name", "Methods", "Pattern", "View").
		Rows(rows...).
		Width(tableWidth)

	fmt.Fprintln(w, t.Render())
}
