// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// esc escapes text for element content and quoted attributes.
func esc(s string) string {
	return templ.EscapeString(s)
}

// href sanitizes and escapes a URL for an href/src attribute.
func href(u string) string {
	return templ.EscapeString(string(templ.URL(u)))
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// renderAll renders components in order, stopping at the first error.
func renderAll(ctx context.Context, w io.Writer, components ...templ.Component) error {
	for _, c := range components {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// Layout is the HTML document wrapper shared by every page.
func Layout(title, theme string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<!DOCTYPE html><html lang="en" data-theme="%s"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>%s</title><link rel="stylesheet" href="/static/app.css"></head><body>`,
			esc(theme), esc(ComposePageTitle(title))); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

const appName = "Exhibitly"

// ComposePageTitle appends the product name unless the title already ends with it.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return appName
	}
	if strings.HasSuffix(title, "| "+appName) {
		return title
	}
	return title + " | " + appName
}

var printer = message.NewPrinter(language.English)

// FormatPrice renders an amount in minor units with its ISO currency code,
// e.g. "USD 1,250.00". Unknown codes fall back to the bare amount.
func FormatPrice(cents int64, code string) string {
	amount := printer.Sprint(number.Decimal(float64(cents)/100, number.Scale(2)))
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return amount
	}
	return unit.String() + " " + amount
}
