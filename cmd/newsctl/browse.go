package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"newsbrief/internal/usecase/view"
)

const browseHelp = `Commands:
  <n>            summarize article n
  c <category>   switch category (clears the search)
  s <text>       search (clears the category)
  cats           list categories
  r              reload
  x              close the summary
  q              quit`

// browse is the interactive reader. It mirrors the web front end: a list
// that reloads on category or search changes and a summary panel that
// requests one summary per opened article.
func (a *app) browse(ctx context.Context, args []string) error {
	fs := a.newFlagSet("browse")
	category := fs.String("category", a.catalog.DefaultCategory, "Initial category")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	names := a.catalog.CategoryNames()
	list := view.NewListState(*category)
	panel := &view.SummaryPanel{}

	a.load(ctx, list, list.Load(), names)
	fmt.Fprintln(a.stdout, browseHelp)

	scanner := bufio.NewScanner(a.stdin)
	for {
		fmt.Fprint(a.stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(a.stdout)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
		case "q", "quit", "exit":
			return nil
		case "h", "help", "?":
			fmt.Fprintln(a.stdout, browseHelp)
		case "cats":
			for _, c := range a.catalog.Categories {
				fmt.Fprintf(a.stdout, "  %-15s %s\n", c.Query, c.Name)
			}
		case "c":
			if arg == "" {
				fmt.Fprintln(a.stdout, "usage: c <category>")
				continue
			}
			panel.Close()
			a.load(ctx, list, list.SelectCategory(arg), names)
		case "s":
			fetch, ok := list.SubmitSearch(arg)
			if !ok {
				continue
			}
			panel.Close()
			a.load(ctx, list, fetch, names)
		case "r":
			a.load(ctx, list, list.Load(), names)
		case "x":
			panel.Close()
		default:
			n, err := strconv.Atoi(cmd)
			if err != nil || n < 1 || n > len(list.Articles) {
				fmt.Fprintf(a.stdout, "unknown command %q (h for help)\n", cmd)
				continue
			}
			panel.Open(list.Articles[n-1])
			a.summarizePanel(ctx, panel)
		}
	}
}

func (a *app) load(ctx context.Context, list *view.ListState, fetch view.Fetch, names map[string]string) {
	_ = view.RenderList(a.stdout, list, names)
	articles, err := a.fetch(ctx, fetch)
	list.Resolve(articles, err)
	_ = view.RenderList(a.stdout, list, names)
}

func (a *app) summarizePanel(ctx context.Context, panel *view.SummaryPanel) {
	url, ok := panel.Begin()
	if !ok {
		return
	}
	_ = view.RenderPanel(a.stdout, panel)
	summary, err := a.api.Summarize(ctx, url)
	panel.Resolve(summary, err)
	_ = view.RenderPanel(a.stdout, panel)
}
