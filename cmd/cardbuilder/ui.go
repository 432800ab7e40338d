package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CardBuilder_Go/internal/domain"
)

var titleCaser = cases.Title(language.English)

// label renders a field name like "hours_played" as "Hours Played"
func label(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeRow(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func writeHeader(tw *tabwriter.Writer, names ...string) {
	labels := make([]string, len(names))
	for i, n := range names {
		labels[i] = label(n)
	}
	writeRow(tw, labels...)
}

// writeFields prints label/value pairs aligned on the label
func writeFields(w io.Writer, pairs ...string) error {
	tw := newTable(w)
	for i := 0; i+1 < len(pairs); i += 2 {
		writeRow(tw, label(pairs[i])+":", pairs[i+1])
	}
	return tw.Flush()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// cardView is a catalog card as shown in the editor
type cardView struct {
	domain.Card
	Selected bool
}

func cardViews(cards []domain.Card, selected []int) []cardView {
	set := make(map[int]struct{}, len(selected))
	for _, i := range selected {
		set[i] = struct{}{}
	}
	views := make([]cardView, len(cards))
	for i, c := range cards {
		_, ok := set[c.Index]
		views[i] = cardView{Card: c, Selected: ok}
	}
	return views
}

func mark(selected bool) string {
	if selected {
		return "[x]"
	}
	return "[ ]"
}
