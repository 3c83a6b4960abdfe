package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/eabolaji/worldnews/internal/config"
	"github.com/eabolaji/worldnews/internal/news"
	"github.com/eabolaji/worldnews/internal/search"
	"github.com/eabolaji/worldnews/internal/theme"
)

// NewsSource fetches the current batch for a category.
type NewsSource interface {
	TopStories(ctx context.Context, category news.Category) ([]news.Article, error)
}

// ThemeStore persists the theme flag. It is injected rather than
// reached for globally so tests can swap it out.
type ThemeStore interface {
	Theme() bool
	SetTheme(dark bool) error
}

// URLOpener opens an article URL outside the TUI.
type URLOpener interface {
	Open(rawURL string) error
}

type App struct {
	config   *config.Config
	store    ThemeStore
	source   NewsSource
	launcher URLOpener
	engine   *search.Engine
	log      *zap.SugaredLogger

	keyHandler   *KeyHandler
	categoryList list.Model
	searchList   list.Model
	searchInput  textinput.Model
	filterInput  textinput.Model
	spinner      spinner.Model
	viewport     viewport.Model

	view         View
	previousView View

	articles       []news.Article
	searchResults  []search.Result
	category       news.Category
	dark           bool
	styles         Styles
	loading        bool
	err            error
	status         string
	fetchSeq       int
	cursor         int
	currentArticle *news.Article
	loadingArticle bool

	width  int
	height int

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
}

func NewApp(source NewsSource, store ThemeStore, launcher URLOpener, engine *search.Engine, cfg *config.Config, log *zap.SugaredLogger) *App {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	categoryList := list.New(categoryItems(), list.NewDefaultDelegate(), 0, 0)
	categoryList.Title = "› sections"
	categoryList.SetShowStatusBar(false)
	categoryList.SetFilteringEnabled(true)
	categoryList.SetShowHelp(true)

	searchList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	searchList.Title = "› search results"
	searchList.SetShowStatusBar(false)
	searchList.SetShowHelp(false)
	searchList.SetFilteringEnabled(false)

	si := textinput.New()
	si.Placeholder = "Search fetched stories..."

	fi := textinput.New()
	fi.Placeholder = "Filter by title or abstract..."

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	dark := store.Theme()

	app := &App{
		config:       cfg,
		store:        store,
		source:       source,
		launcher:     launcher,
		engine:       engine,
		log:          log,
		categoryList: categoryList,
		searchList:   searchList,
		searchInput:  si,
		filterInput:  fi,
		spinner:      sp,
		viewport:     viewport.New(0, 0),
		view:         ViewBrowse,
		previousView: ViewBrowse,
		category:     news.CategoryAll,
		dark:         dark,
		styles:       NewStyles(theme.PaletteFor(dark)),
	}

	app.keyHandler = NewKeyHandler(app, cfg)

	return app
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.startFetch(a.category),
		a.spinner.Tick,
		tea.EnterAltScreen,
	)
}

// startFetch begins a fetch cycle: loading on, error cleared, sequence
// bumped so a stale in-flight completion can no longer commit.
func (a *App) startFetch(category news.Category) tea.Cmd {
	a.loading = true
	a.err = nil
	a.status = MsgLoading
	a.fetchSeq++
	return tea.Batch(a.fetchNews(category, a.fetchSeq), a.spinner.Tick)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.categoryList.SetSize(msg.Width, msg.Height-3)
		searchListHeight := msg.Height - 10
		if searchListHeight < 5 {
			searchListHeight = 5
		}
		a.searchList.SetSize(msg.Width, searchListHeight)
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 3

		inputWidth := msg.Width - 4
		if inputWidth < 20 {
			inputWidth = msg.Width
		}
		a.filterInput.Width = inputWidth

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case spinner.TickMsg:
		if a.loading || a.loadingArticle {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case newsLoadedMsg:
		// Only the most recently issued fetch may commit; a slower
		// response for an older category is discarded.
		if msg.seq != a.fetchSeq {
			a.log.Debugw("discarding stale fetch", "seq", msg.seq, "current", a.fetchSeq)
			break
		}
		a.loading = false
		if msg.err != nil {
			a.err = msg.err
			a.status = ""
			a.log.Warnw("fetch failed", "category", a.category.String(), "error", msg.err)
			break
		}
		a.articles = msg.articles
		a.cursor = 0
		a.status = MsgFetched(a.category.String(), len(msg.articles))
		a.log.Infow("fetch complete", "category", a.category.String(), "count", len(msg.articles))
		cmds = append(cmds, a.indexArticles(msg.articles))

	case searchResultsMsg:
		if a.view == ViewSearch {
			a.searchResults = msg.results
			items := make([]list.Item, len(msg.results))
			for i, result := range msg.results {
				items[i] = searchResultItem{result: result, styles: &a.styles}
			}
			a.searchList.SetItems(items)
			a.status = MsgResultsCount(len(msg.results))
		}

	case articleRenderedMsg:
		if a.view == ViewReader {
			a.viewport.SetContent(msg.content)
			a.viewport.GotoTop()
			a.loadingArticle = false
		}

	case errorMsg:
		// Non-fetch failures surface in the status bar; only a failed
		// fetch suppresses the grid.
		a.status = fmt.Sprintf("✗ %v", msg.err)
	}

	switch a.view {
	case ViewCategories:
		newListModel, cmd := a.categoryList.Update(msg)
		a.categoryList = newListModel
		cmds = append(cmds, cmd)
	case ViewReader:
		switch msg.(type) {
		case tea.WindowSizeMsg, tea.MouseMsg:
			newViewport, cmd := a.viewport.Update(msg)
			a.viewport = newViewport
			cmds = append(cmds, cmd)
		}
	case ViewSearch:
		newSearchList, cmd := a.searchList.Update(msg)
		a.searchList = newSearchList
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// visibleArticles is the filtered view projection: the fetched batch
// narrowed by the filter term, never mutated.
func (a *App) visibleArticles() []news.Article {
	return news.Filter(a.articles, a.filterInput.Value())
}

func (a *App) View() string {
	var content string

	switch a.view {
	case ViewBrowse:
		content = a.browseView()
	case ViewCategories:
		content = a.categoryList.View()
	case ViewReader:
		if a.loadingArticle {
			content = lipgloss.NewStyle().
				Width(a.width).
				Height(a.height-3).
				Align(lipgloss.Center, lipgloss.Center).
				Render(a.spinner.View() + " " + a.styles.Muted.Render("Loading article…"))
		} else {
			content = a.viewport.View()
		}
	case ViewSearch:
		content = a.searchView()
	}

	statusBar := a.statusBarView()
	if statusBar != "" {
		separatorWidth := a.width - 2
		if separatorWidth < 0 {
			separatorWidth = 0
		}
		separator := a.styles.Separator.Render(strings.Repeat("─", separatorWidth+1))
		return lipgloss.JoinVertical(lipgloss.Top, content, separator, statusBar)
	}

	return content
}

func (a *App) browseView() string {
	header := a.styles.Title.Render("🌎 " + AppName)
	section := a.styles.Header.Render("› "+a.category.String()) +
		a.styles.Help.Render("  ([ and ] switch sections)")
	mode := a.styles.Muted.Render(MsgThemeChanged(a.dark))

	filterLine := a.filterInput.View()

	var body string
	switch {
	case a.loading:
		body = lipgloss.NewStyle().
			Width(a.width).
			Align(lipgloss.Center).
			Render(a.spinner.View() + " " + a.styles.Muted.Render(MsgLoading))
	case a.err != nil:
		body = lipgloss.NewStyle().
			Width(a.width).
			Align(lipgloss.Center).
			Render(a.styles.Error.Render(fmt.Sprintf("✗ %v", a.err)))
	default:
		body = renderGrid(
			a.visibleArticles(),
			a.styles,
			a.width,
			a.config.UI.CardWidth,
			a.config.UI.MaxAbstractLength,
			a.cursor,
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", section, "  ", mode),
		filterLine,
		"",
		body,
	)
}

func (a *App) searchView() string {
	searchInputWidth := a.width - 8
	if searchInputWidth < 10 {
		searchInputWidth = a.width - 4
	}
	a.searchInput.Width = searchInputWidth

	inputBorderColor := a.styles.Muted.GetForeground()
	if a.searchInput.Focused() {
		inputBorderColor = a.styles.Header.GetForeground()
	}

	searchInput := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(inputBorderColor).
		Padding(0, 1).
		Width(searchInputWidth + 4).
		Render(a.searchInput.View())

	helpText := ""
	if a.searchInput.Focused() {
		helpText = "Type to search • Tab/↓: results • Esc: back"
	} else if len(a.searchList.Items()) > 0 {
		helpText = "↑↓: navigate • Enter: read • Tab/↑: search box • Esc: back"
	} else {
		helpText = MsgNoResults + " • Tab/↑: search box • Esc: back"
	}

	searchContent := lipgloss.JoinVertical(
		lipgloss.Top,
		a.styles.Header.Render("› search"),
		"",
		searchInput,
		a.styles.Muted.Render(helpText),
		"",
		a.searchList.View(),
	)

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height - 3).
		MaxHeight(a.height - 3).
		Render(searchContent)
}

func (a *App) statusBarView() string {
	if a.err != nil {
		errorLine := a.styles.Error.Render(fmt.Sprintf("✗ %v", a.err))
		return a.styles.StatusBar.Width(a.width).Render(errorLine)
	}

	parts := a.keyHandler.GetHelpForCurrentView()
	if a.status != "" {
		parts = append([]string{a.status}, parts...)
	}
	if len(parts) == 0 {
		return ""
	}

	return a.styles.StatusBar.Width(a.width).Render(strings.Join(parts, " • "))
}

// applyTheme flips the flag, restyles, and writes the preference
// through synchronously.
func (a *App) applyTheme(dark bool) {
	a.dark = dark
	a.styles = NewStyles(theme.PaletteFor(dark))
	if err := a.store.SetTheme(dark); err != nil {
		a.log.Warnw("persisting theme failed", "error", err)
	}
}

type categoryItem struct {
	category news.Category
}

func (i categoryItem) Title() string { return i.category.String() }
func (i categoryItem) Description() string {
	if i.category == news.CategoryAll {
		return "every section (home)"
	}
	return "section " + i.category.Endpoint()
}
func (i categoryItem) FilterValue() string { return i.category.String() }

func categoryItems() []list.Item {
	items := make([]list.Item, len(news.AllCategories))
	for i, cat := range news.AllCategories {
		items[i] = categoryItem{category: cat}
	}
	return items
}

type searchResultItem struct {
	result search.Result
	styles *Styles
}

func (i searchResultItem) Title() string {
	return i.result.Article.Title
}

func (i searchResultItem) Description() string {
	desc := truncateEnd(i.result.Article.Abstract, 80)
	if i.result.Article.Byline != "" {
		desc += " • " + i.result.Article.Byline
	}
	if i.styles != nil {
		return i.styles.Muted.Render(desc)
	}
	return desc
}

func (i searchResultItem) FilterValue() string {
	return i.result.Article.Title + " " + i.result.Article.Abstract
}

type newsLoadedMsg struct {
	seq      int
	articles []news.Article
	err      error
}

type searchResultsMsg struct {
	results []search.Result
}

type articleRenderedMsg struct {
	content string
}

type errorMsg struct {
	err error
}
