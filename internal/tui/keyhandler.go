package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eabolaji/worldnews/internal/config"
	"github.com/eabolaji/worldnews/internal/news"
)

type KeyHandler struct {
	app         *App
	config      *config.Config
	keys        config.KeyBindings
	modifierKey string
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	modifierKey := cfg.Keys.Modifier + "+"
	return &KeyHandler{app: app, config: cfg, keys: cfg.Keys.Bindings, modifierKey: modifierKey}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if kh.isInTextInputMode() {
		return kh.handleTextInputMode(msg)
	}

	if model, cmd, handled := kh.handleCustomKeys(key); handled {
		return model, cmd
	}

	return kh.delegateToCharm(msg)
}

func (kh *KeyHandler) isInTextInputMode() bool {
	switch kh.app.view {
	case ViewBrowse:
		return kh.app.filterInput.Focused()
	case ViewSearch:
		return kh.app.searchInput.Focused()
	default:
		return false
	}
}

func (kh *KeyHandler) handleTextInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		if kh.app.view == ViewBrowse {
			// Leave the typed term in place; a second esc clears it.
			kh.app.filterInput.Blur()
			return kh.app, nil
		}
		return kh.navigateBack()
	case "ctrl+c":
		return kh.app, tea.Quit
	case "enter":
		return kh.handleTextInputEnter()
	case "tab", "down":
		if kh.app.view == ViewSearch {
			if len(kh.app.searchList.Items()) > 0 {
				kh.app.searchInput.Blur()
				kh.app.searchList.Select(0)
			}
			return kh.app, nil
		}
		return kh.delegateToTextInput(msg)
	default:
		return kh.delegateToTextInput(msg)
	}
}

func (kh *KeyHandler) handleTextInputEnter() (tea.Model, tea.Cmd) {
	switch kh.app.view {
	case ViewBrowse:
		kh.app.filterInput.Blur()
		return kh.app, nil

	case ViewSearch:
		if items := kh.app.searchList.Items(); len(items) > 0 {
			if i, ok := items[0].(searchResultItem); ok {
				return kh.selectSearchResult(i)
			}
		}
		return kh.app, nil

	default:
		return kh.app, nil
	}
}

// delegateToTextInput passes the key to the focused text input
func (kh *KeyHandler) delegateToTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch kh.app.view {
	case ViewBrowse:
		// The filter is a pure projection over the fetched batch, so
		// every keystroke can re-apply it without further plumbing.
		newFilterInput, cmd := kh.app.filterInput.Update(msg)
		kh.app.filterInput = newFilterInput
		kh.app.cursor = 0
		return kh.app, cmd

	case ViewSearch:
		prev := kh.app.searchInput.Value()
		newSearchInput, cmd := kh.app.searchInput.Update(msg)
		kh.app.searchInput = newSearchInput

		newVal := kh.sanitizeSearchInput(kh.app.searchInput.Value())
		if newVal != prev {
			// The index holds one batch at most, so querying on every
			// keystroke is cheap enough to skip debouncing.
			return kh.app, tea.Batch(cmd, kh.app.performSearch(newVal))
		}
		return kh.app, cmd

	default:
		return kh.app, nil
	}
}

// handleCustomKeys handles only our custom action keys
func (kh *KeyHandler) handleCustomKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "ctrl+c", kh.keys.Quit:
		return kh.app, tea.Quit, true
	case "esc":
		model, cmd := kh.navigateBack()
		return model, cmd, true
	case kh.modifierKey + kh.keys.Search:
		model, cmd := kh.enterSearchMode()
		return model, cmd, true
	case kh.modifierKey + kh.keys.ToggleTheme:
		kh.app.applyTheme(!kh.app.dark)
		kh.app.invalidateRenderer()
		kh.app.status = MsgThemeChanged(kh.app.dark)
		return kh.app, nil, true
	}

	switch kh.app.view {
	case ViewBrowse:
		return kh.handleBrowseCustomKeys(key)
	case ViewReader:
		return kh.handleReaderCustomKeys(key)
	default:
		return kh.app, nil, false
	}
}

func (kh *KeyHandler) handleBrowseCustomKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case kh.keys.Filter:
		kh.app.filterInput.Focus()
		return kh.app, nil, true
	case kh.modifierKey + kh.keys.Refresh:
		return kh.app, kh.app.startFetch(kh.app.category), true
	case kh.modifierKey + kh.keys.Categories:
		kh.app.previousView = kh.app.view
		kh.app.view = ViewCategories
		return kh.app, nil, true
	case "]":
		return kh.switchCategory(kh.app.category.Next())
	case "[":
		return kh.switchCategory(kh.app.category.Prev())
	case kh.modifierKey + kh.keys.Open:
		if article, ok := kh.selectedArticle(); ok {
			return kh.app, kh.app.openArticle(article), true
		}
		return kh.app, nil, true
	case "enter":
		if article, ok := kh.selectedArticle(); ok {
			return kh.openReader(article)
		}
		return kh.app, nil, true
	case "left", "h":
		kh.moveCursor(-1)
		return kh.app, nil, true
	case "right", "l":
		kh.moveCursor(1)
		return kh.app, nil, true
	case "up", "k":
		kh.moveCursor(-gridColumns(kh.app.width, kh.app.config.UI.CardWidth))
		return kh.app, nil, true
	case "down", "j":
		kh.moveCursor(gridColumns(kh.app.width, kh.app.config.UI.CardWidth))
		return kh.app, nil, true
	}
	return kh.app, nil, false
}

func (kh *KeyHandler) handleReaderCustomKeys(key string) (tea.Model, tea.Cmd, bool) {
	if key == kh.modifierKey+kh.keys.Open {
		if kh.app.currentArticle != nil {
			return kh.app, kh.app.openArticle(*kh.app.currentArticle), true
		}
		return kh.app, nil, true
	}
	return kh.app, nil, false
}

func (kh *KeyHandler) switchCategory(category news.Category) (tea.Model, tea.Cmd, bool) {
	kh.app.category = category
	return kh.app, kh.app.startFetch(category), true
}

func (kh *KeyHandler) selectedArticle() (news.Article, bool) {
	visible := kh.app.visibleArticles()
	if len(visible) == 0 || kh.app.cursor >= len(visible) {
		return news.Article{}, false
	}
	return visible[kh.app.cursor], true
}

func (kh *KeyHandler) moveCursor(delta int) {
	visible := kh.app.visibleArticles()
	if len(visible) == 0 {
		return
	}
	next := kh.app.cursor + delta
	if next < 0 || next >= len(visible) {
		return
	}
	kh.app.cursor = next
}

func (kh *KeyHandler) openReader(article news.Article) (tea.Model, tea.Cmd, bool) {
	kh.app.currentArticle = &article
	kh.app.loadingArticle = true
	kh.app.previousView = ViewBrowse
	kh.app.view = ViewReader
	return kh.app, tea.Batch(kh.app.spinner.Tick, kh.app.renderArticle(article)), true
}

// delegateToCharm lets Charm handle all keys we don't intercept
func (kh *KeyHandler) delegateToCharm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch kh.app.view {
	case ViewCategories:
		kh.app.categoryList, cmd = kh.app.categoryList.Update(msg)
		if msg.String() == "enter" {
			if i, ok := kh.app.categoryList.SelectedItem().(categoryItem); ok {
				kh.app.view = ViewBrowse
				kh.app.category = i.category
				return kh.app, kh.app.startFetch(i.category)
			}
		}
		return kh.app, cmd

	case ViewReader:
		kh.app.viewport, cmd = kh.app.viewport.Update(msg)
		return kh.app, cmd

	case ViewSearch:
		if !kh.app.searchInput.Focused() {
			switch msg.String() {
			case "tab", "shift+tab":
				kh.app.searchInput.Focus()
				return kh.app, nil
			case "up":
				if len(kh.app.searchList.Items()) > 0 && kh.app.searchList.Index() == 0 {
					kh.app.searchInput.Focus()
					return kh.app, nil
				}
			case "/", "i":
				kh.app.searchInput.Focus()
				return kh.app, nil
			}
		}

		kh.app.searchList, cmd = kh.app.searchList.Update(msg)
		if msg.String() == "enter" && !kh.app.searchInput.Focused() {
			if i, ok := kh.app.searchList.SelectedItem().(searchResultItem); ok {
				return kh.selectSearchResult(i)
			}
		}
		return kh.app, cmd

	default:
		return kh.app, cmd
	}
}

func (kh *KeyHandler) selectSearchResult(result searchResultItem) (tea.Model, tea.Cmd) {
	article := result.result.Article
	kh.app.currentArticle = &article
	kh.app.previousView = ViewSearch
	kh.app.loadingArticle = true
	kh.app.view = ViewReader
	return kh.app, tea.Batch(kh.app.spinner.Tick, kh.app.renderArticle(article))
}

func (kh *KeyHandler) navigateBack() (tea.Model, tea.Cmd) {
	switch kh.app.view {
	case ViewCategories:
		kh.app.view = ViewBrowse
		return kh.app, nil

	case ViewSearch:
		kh.app.view = ViewBrowse
		kh.app.searchInput.Reset()
		kh.app.searchResults = nil
		kh.app.searchList.SetItems([]list.Item{})
		return kh.app, nil

	case ViewReader:
		kh.app.view = kh.app.previousView
		kh.app.currentArticle = nil
		if kh.app.view == ViewSearch {
			kh.app.searchInput.Blur()
		}
		return kh.app, nil

	case ViewBrowse:
		if kh.app.filterInput.Value() != "" {
			kh.app.filterInput.Reset()
			kh.app.cursor = 0
			return kh.app, nil
		}
		return kh.app, tea.Quit

	default:
		return kh.app, tea.Quit
	}
}

func (kh *KeyHandler) enterSearchMode() (tea.Model, tea.Cmd) {
	kh.app.previousView = kh.app.view
	kh.app.view = ViewSearch
	kh.app.searchInput.Reset()
	kh.app.searchInput.Focus()
	kh.app.searchResults = nil
	kh.app.searchList.SetItems([]list.Item{})
	if kh.app.engine != nil {
		if n, err := kh.app.engine.DocCount(); err == nil {
			kh.app.status = fmt.Sprintf("Searching %d stories", n)
		}
	}
	return kh.app, nil
}

func (kh *KeyHandler) sanitizeSearchInput(input string) string {
	input = strings.TrimSpace(input)

	if len(input) > 256 {
		input = input[:256]
	}

	input = strings.ReplaceAll(input, "\n", " ")
	input = strings.ReplaceAll(input, "\r", " ")
	input = strings.ReplaceAll(input, "\t", " ")

	for strings.Contains(input, "  ") {
		input = strings.ReplaceAll(input, "  ", " ")
	}

	return strings.TrimSpace(input)
}

// GetHelpForCurrentView returns only our custom help text (Charm handles the rest)
func (kh *KeyHandler) GetHelpForCurrentView() []string {
	switch kh.app.view {
	case ViewBrowse:
		help := []string{
			kh.keys.Filter + ": filter",
			"[ ]: section",
			kh.modifierKey + kh.keys.Refresh + ": refresh",
			kh.modifierKey + kh.keys.Search + ": search",
			kh.modifierKey + kh.keys.Categories + ": sections",
		}
		if len(kh.app.visibleArticles()) > 0 {
			help = append(help, "enter: read", kh.modifierKey+kh.keys.Open+": open")
		}
		help = append(help, kh.modifierKey+kh.keys.ToggleTheme+": theme")
		return help

	case ViewCategories:
		return []string{"enter: select", "esc: back"}

	case ViewReader:
		return []string{kh.modifierKey + kh.keys.Open + ": open in browser", "esc: back"}

	case ViewSearch:
		return []string{kh.modifierKey + kh.keys.Search + ": search"}

	default:
		return []string{}
	}
}
