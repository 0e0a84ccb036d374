package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/wardrobe/internal/cli/formatter"
	"github.com/alexanderramin/wardrobe/internal/outfit"
	"github.com/alexanderramin/wardrobe/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
)

// catalogSource is the slice of WardrobeService the browser needs.
type catalogSource interface {
	Catalog(ctx context.Context, req service.CatalogRequest) (*service.CatalogResponse, error)
}

// catalogLoadedMsg carries one fetched page.
type catalogLoadedMsg struct {
	resp *service.CatalogResponse
	err  error
}

type browseKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
	Quit  key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev")),
		Next:  key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next")),
		First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.First, k.Last, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// browseModel pages through the filtered catalog one service call per page.
type browseModel struct {
	source   catalogSource
	criteria outfit.Criteria
	pager    paginator.Model
	keys     browseKeyMap
	help     help.Model

	resp    *service.CatalogResponse
	err     error
	loading bool
}

func newBrowseModel(source catalogSource, criteria outfit.Criteria, perPage int) browseModel {
	if perPage <= 0 {
		perPage = outfit.DefaultPerPage
	}
	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.ArabicFormat = "Page %d / %d"
	pager.PerPage = perPage

	return browseModel{
		source:   source,
		criteria: criteria,
		pager:    pager,
		keys:     defaultBrowseKeys(),
		help:     help.New(),
		loading:  true,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.load(1)
}

// load fetches a 1-based page.
func (m browseModel) load(page int) tea.Cmd {
	source, req := m.source, service.CatalogRequest{
		Criteria: m.criteria,
		Page:     page,
		PerPage:  m.pager.PerPage,
	}
	return func() tea.Msg {
		resp, err := source.Catalog(context.Background(), req)
		return catalogLoadedMsg{resp: resp, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.resp = msg.resp
		m.pager.SetTotalPages(msg.resp.Total)
		m.pager.Page = msg.resp.Page - 1
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			return m.goTo(m.pager.Page - 1)
		case key.Matches(msg, m.keys.Next):
			return m.goTo(m.pager.Page + 1)
		case key.Matches(msg, m.keys.First):
			return m.goTo(0)
		case key.Matches(msg, m.keys.Last):
			return m.goTo(m.pager.TotalPages - 1)
		}
	}
	return m, nil
}

// goTo requests a 0-based page index; out-of-range moves are ignored.
func (m browseModel) goTo(index int) (tea.Model, tea.Cmd) {
	if m.loading || m.resp == nil || m.resp.Total == 0 {
		return m, nil
	}
	if index < 0 || index >= m.pager.TotalPages || index == m.pager.Page {
		return m, nil
	}
	m.loading = true
	return m, m.load(index + 1)
}

func (m browseModel) View() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}
	if m.resp == nil {
		return formatter.Dim("Loading outfits...")
	}

	b.WriteString(formatter.Header(fmt.Sprintf("Outfits (%d)", m.resp.Total)))
	b.WriteString("\n")
	if !m.criteria.IsZero() {
		fmt.Fprintf(&b, "%s %s\n", formatter.Dim("Filters:"), formatter.FormatCriteria(m.criteria))
	}
	b.WriteString("\n")

	if m.resp.Total == 0 {
		b.WriteString(formatter.StyleYellow.Render(formatter.NoMatches))
		b.WriteString("\n\n")
	} else {
		for i, o := range m.resp.Outfits {
			b.WriteString(formatter.FormatOutfit(m.resp.FirstNumber+i, o))
			b.WriteString("\n")
		}
		b.WriteString(formatter.Dim(m.pager.View()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
