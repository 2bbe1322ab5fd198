package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertbloom/stockpix/internal/gallery"
	"github.com/desertbloom/stockpix/internal/models"
	"github.com/desertbloom/stockpix/internal/prefs"
	"github.com/desertbloom/stockpix/internal/services"
	"github.com/desertbloom/stockpix/internal/session"
	"github.com/desertbloom/stockpix/internal/staging"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ResolvingView ViewState = iota
	LoginView
	HomeView
	GalleryView
	UploadView
)

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	store     *session.Store
	guard     *session.Guard
	auth      services.AuthAPI
	engine    *gallery.Engine
	buffer    *staging.Buffer
	submitter *staging.Submitter
	prefs     *prefs.Store

	width  int
	height int
	styles *Palette
	theme  string

	spin        spinner.Model
	galleryList list.Model
	stagedList  list.Model
	emailInput  textinput.Model
	passInput   textinput.Model
	titleInput  textinput.Model
	pathInput   textinput.Model

	editingID string // media id (gallery) or local id (upload) being retitled
	adding    bool   // path input active on the upload view
	inFlight  bool   // a reorder submission is outstanding
	status    string
	err       error
	help      help.Model
	keys      keyMap
}

// ModelOpts contains the dependencies for creating a Model.
type ModelOpts struct {
	Store     *session.Store
	Auth      services.AuthAPI
	Engine    *gallery.Engine
	Buffer    *staging.Buffer
	Submitter *staging.Submitter
	Prefs     *prefs.Store
}

// NewModel creates a new TUI model with the provided dependencies.
//
// The model starts in [ResolvingView]; no protected view renders until the
// session store has resolved.
func NewModel(ctx context.Context, opts ModelOpts) *Model {
	theme := prefs.ThemeLight
	if opts.Prefs != nil {
		if saved, err := opts.Prefs.Theme(); err == nil {
			theme = saved
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.EchoMode = textinput.EchoPassword

	title := textinput.New()
	title.Placeholder = "title"

	path := textinput.New()
	path.Placeholder = "path/to/image.jpg"

	galleryList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	galleryList.Title = "Your Images"
	galleryList.SetShowHelp(false)

	stagedList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	stagedList.Title = "Staged Files"
	stagedList.SetShowHelp(false)

	return &Model{
		ctx:         ctx,
		view:        ResolvingView,
		store:       opts.Store,
		guard:       session.NewGuard(opts.Store),
		auth:        opts.Auth,
		engine:      opts.Engine,
		buffer:      opts.Buffer,
		submitter:   opts.Submitter,
		prefs:       opts.Prefs,
		styles:      PaletteFor(theme),
		theme:       theme,
		spin:        sp,
		galleryList: galleryList,
		stagedList:  stagedList,
		emailInput:  email,
		passInput:   pass,
		titleInput:  title,
		pathInput:   path,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init resolves the session before anything else renders.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.resolveSession())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.galleryList.SetSize(msg.Width-4, msg.Height-8)
		m.stagedList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case spinner.TickMsg:
		if m.view != ResolvingView {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case sessionResolvedMsg:
		// The guard decision is only observable after resolution, so there is
		// never a flash of protected content.
		if m.guard.Check() == session.Allow {
			m.view = HomeView
			return m, m.loadImages()
		}
		m.view = LoginView
		return m, textinput.Blink

	case loginDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.store.Login(*msg.user)
		m.view = HomeView
		m.passInput.SetValue("")
		return m, m.loadImages()

	case logoutDoneMsg:
		m.view = LoginView
		m.status = ""
		m.emailInput.Focus()
		return m, textinput.Blink

	case imagesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.setGalleryItems(msg.items)
		return m, nil

	case reorderDoneMsg:
		m.inFlight = false
		if msg.err != nil {
			// The engine already restored the server order; mirror it.
			m.err = msg.err
			m.status = "order restored from server"
		} else {
			m.status = "order saved"
		}
		m.setGalleryItems(m.engine.Items())
		return m, nil

	case retitleDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "title saved"
		m.setGalleryItems(m.engine.Items())
		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "image deleted"
		m.setGalleryItems(m.engine.Items())
		return m, nil

	case uploadDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = "batch uploaded"
		m.setStagedItems()
		// A successful upload refreshes the authoritative collection.
		return m, m.loadImages()

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case ResolvingView:
		return fmt.Sprintf("\n %s checking session...\n", m.spin.View())
	case LoginView:
		return m.renderLogin()
	case HomeView:
		return m.renderHome()
	case GalleryView:
		return m.renderGallery()
	case UploadView:
		return m.renderUpload()
	default:
		return ""
	}
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case LoginView:
		return m.handleLoginKeys(msg)
	case HomeView:
		return m.handleHomeKeys(msg)
	case GalleryView:
		return m.handleGalleryKeys(msg)
	case UploadView:
		return m.handleUploadKeys(msg)
	}
	// ResolvingView only honors quit; everything else waits for resolution.
	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab":
		if m.emailInput.Focused() {
			m.emailInput.Blur()
			m.passInput.Focus()
		} else {
			m.passInput.Blur()
			m.emailInput.Focus()
		}
		return m, textinput.Blink
	case "T":
		m.toggleTheme()
		return m, nil
	case "enter":
		email := strings.TrimSpace(m.emailInput.Value())
		password := m.passInput.Value()
		if email == "" || password == "" {
			m.err = fmt.Errorf("please fill in all fields")
			return m, nil
		}
		m.err = nil
		return m, m.login(email, password)
	}

	var cmd tea.Cmd
	if m.emailInput.Focused() {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passInput, cmd = m.passInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "g":
		m.view = GalleryView
		m.status = ""
		return m, m.loadImages()
	case "u":
		m.view = UploadView
		m.status = ""
		m.setStagedItems()
		return m, nil
	case "T":
		m.toggleTheme()
		return m, nil
	case "L":
		return m, m.logout()
	}
	return m, nil
}

func (m *Model) handleGalleryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingID != "" {
		return m.handleTitleEntry(msg, false)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = HomeView
		return m, nil
	case key.Matches(msg, m.keys.reload):
		return m, m.loadImages()
	case key.Matches(msg, m.keys.theme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.moveUp):
		return m, m.moveSelected(-1)
	case key.Matches(msg, m.keys.moveDown):
		return m, m.moveSelected(1)
	case key.Matches(msg, m.keys.edit):
		if item, ok := m.selectedMedia(); ok {
			m.editingID = item.ID
			m.titleInput.SetValue(item.Title)
			m.titleInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, m.keys.delete):
		if item, ok := m.selectedMedia(); ok {
			return m, m.deleteImage(item.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.galleryList, cmd = m.galleryList.Update(msg)
	return m, cmd
}

func (m *Model) handleUploadKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingID != "" {
		return m.handleTitleEntry(msg, true)
	}
	if m.adding {
		return m.handlePathEntry(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = HomeView
		return m, nil
	case key.Matches(msg, m.keys.add):
		m.adding = true
		m.pathInput.SetValue("")
		m.pathInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.edit):
		if file, ok := m.selectedStaged(); ok {
			m.editingID = file.LocalID
			m.titleInput.SetValue(file.Title)
			m.titleInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	case key.Matches(msg, m.keys.delete):
		if file, ok := m.selectedStaged(); ok {
			if err := m.buffer.Unstage(file.LocalID); err != nil {
				m.err = err
			} else {
				m.err = nil
				m.setStagedItems()
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.submit):
		if m.buffer.Len() == 0 {
			m.status = "nothing staged"
			return m, nil
		}
		return m, m.submitBatch()
	}

	var cmd tea.Cmd
	m.stagedList, cmd = m.stagedList.Update(msg)
	return m, cmd
}

// handleTitleEntry drives the shared title input. Gallery edits go through
// the engine (confirm-before-mutate); staged edits apply locally at once.
func (m *Model) handleTitleEntry(msg tea.KeyMsg, staged bool) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editingID = ""
		m.titleInput.Blur()
		return m, nil
	case "enter":
		id := m.editingID
		title := m.titleInput.Value()
		m.titleInput.Blur()
		if staged {
			m.editingID = ""
			if err := m.buffer.Retitle(id, title); err != nil {
				m.err = err
			} else {
				m.err = nil
				m.setStagedItems()
			}
			return m, nil
		}
		if strings.TrimSpace(title) == "" {
			// Rejected locally; the engine would refuse it too, without I/O.
			m.err = fmt.Errorf("title cannot be empty")
			m.titleInput.Focus()
			return m, nil
		}
		m.editingID = ""
		return m, m.retitle(id, title)
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) handlePathEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.pathInput.Blur()
		return m, nil
	case "enter":
		path := strings.TrimSpace(m.pathInput.Value())
		m.adding = false
		m.pathInput.Blur()
		if path == "" {
			return m, nil
		}
		if _, err := m.buffer.StageFile(path); err != nil {
			m.err = err
		} else {
			m.err = nil
			m.setStagedItems()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case GalleryView:
		m.galleryList, cmd = m.galleryList.Update(msg)
	case UploadView:
		m.stagedList, cmd = m.stagedList.Update(msg)
	}
	return m, cmd
}

// moveSelected applies the optimistic half of a reorder to the displayed list
// immediately, then submits through the engine. Further moves are ignored
// while a submission is outstanding.
func (m *Model) moveSelected(delta int) tea.Cmd {
	if m.inFlight {
		m.status = "previous reorder still saving"
		return nil
	}

	src := m.galleryList.Index()
	dst := src + delta
	if src < 0 || dst < 0 || dst >= len(m.galleryList.Items()) {
		return nil
	}

	items := m.galleryList.Items()
	items[src], items[dst] = items[dst], items[src]
	m.galleryList.SetItems(items)
	m.galleryList.Select(dst)

	m.inFlight = true
	m.status = "saving order..."
	return func() tea.Msg {
		return reorderDoneMsg{err: m.engine.Reorder(m.ctx, src, dst)}
	}
}

func (m *Model) selectedMedia() (models.MediaItem, bool) {
	if selected, ok := m.galleryList.SelectedItem().(mediaItem); ok {
		return selected.item, true
	}
	return models.MediaItem{}, false
}

func (m *Model) selectedStaged() (*staging.StagedFile, bool) {
	if selected, ok := m.stagedList.SelectedItem().(stagedItem); ok {
		return selected.file, true
	}
	return nil, false
}

func (m *Model) setGalleryItems(items []models.MediaItem) {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = mediaItem{item: item}
	}
	m.galleryList.SetItems(listItems)
}

func (m *Model) setStagedItems() {
	files := m.buffer.Files()
	listItems := make([]list.Item, len(files))
	for i, file := range files {
		listItems[i] = stagedItem{file: file}
	}
	m.stagedList.SetItems(listItems)
}

func (m *Model) toggleTheme() {
	if m.prefs == nil {
		return
	}
	theme, err := m.prefs.ToggleTheme()
	if err != nil {
		m.err = err
		return
	}
	m.theme = theme
	m.styles = PaletteFor(theme)
}

func (m *Model) resolveSession() tea.Cmd {
	return func() tea.Msg {
		return sessionResolvedMsg{status: m.store.Resolve(m.ctx)}
	}
}

func (m *Model) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		if err := m.auth.Login(m.ctx, email, password); err != nil {
			return loginDoneMsg{err: err}
		}
		user, err := m.auth.CheckAuth(m.ctx)
		if err != nil {
			// Login succeeded but the follow-up profile fetch did not; fall
			// back to the email we already know.
			user = &models.User{Email: email}
		}
		return loginDoneMsg{user: user}
	}
}

func (m *Model) logout() tea.Cmd {
	return func() tea.Msg {
		m.store.Logout(m.ctx)
		return logoutDoneMsg{}
	}
}

func (m *Model) loadImages() tea.Cmd {
	return func() tea.Msg {
		items, err := m.engine.Load(m.ctx)
		return imagesLoadedMsg{items: items, err: err}
	}
}

func (m *Model) retitle(id, title string) tea.Cmd {
	return func() tea.Msg {
		return retitleDoneMsg{err: m.engine.Retitle(m.ctx, id, title)}
	}
}

func (m *Model) deleteImage(id string) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: m.engine.Delete(m.ctx, id)}
	}
}

func (m *Model) submitBatch() tea.Cmd {
	return func() tea.Msg {
		return uploadDoneMsg{err: m.submitter.Submit(m.ctx, m.buffer)}
	}
}

func (m *Model) renderLogin() string {
	title := m.styles.title.Render("LOGIN")
	fields := fmt.Sprintf("%s\n%s", m.emailInput.View(), m.passInput.View())
	footer := m.styles.help.Render("tab: switch field • enter: login • T: theme • ctrl+c: quit")

	var errLine string
	if m.err != nil {
		errLine = "\n" + m.styles.err.Render(m.err.Error())
	}

	return fmt.Sprintf("%s\n%s%s\n\n%s", title, fields, errLine, footer)
}

func (m *Model) renderHome() string {
	title := m.styles.title.Render("StockImages")

	var who string
	if user, ok := m.store.User(); ok {
		who = fmt.Sprintf("signed in as %s\n\n", user.Email)
	}

	menu := "g: view gallery\nu: upload images\nL: logout\nT: toggle theme\nq: quit"
	return fmt.Sprintf("%s\n%s%s\n\n%s", title, who, menu, m.statusLine())
}

func (m *Model) renderGallery() string {
	if m.editingID != "" {
		prompt := m.styles.title.Render("New title")
		hint := m.styles.help.Render("enter: save • esc: cancel")
		return fmt.Sprintf("%s\n%s\n\n%s%s", prompt, m.titleInput.View(), hint, m.errLine())
	}

	helpKeys := []key.Binding{m.keys.moveUp, m.keys.moveDown, m.keys.edit, m.keys.delete, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n%s%s", m.galleryList.View(), m.statusLine(), helpView, m.errLine())
}

func (m *Model) renderUpload() string {
	if m.editingID != "" {
		prompt := m.styles.title.Render("Staged file title")
		hint := m.styles.help.Render("enter: save • esc: cancel")
		return fmt.Sprintf("%s\n%s\n\n%s%s", prompt, m.titleInput.View(), hint, m.errLine())
	}
	if m.adding {
		prompt := m.styles.title.Render("Stage a file")
		hint := m.styles.help.Render("enter: stage • esc: cancel")
		return fmt.Sprintf("%s\n%s\n\n%s%s", prompt, m.pathInput.View(), hint, m.errLine())
	}

	helpKeys := []key.Binding{m.keys.add, m.keys.edit, m.keys.delete, m.keys.submit, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n%s%s", m.stagedList.View(), m.statusLine(), helpView, m.errLine())
}

func (m *Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	return m.styles.ok.Render(m.status)
}

func (m *Model) errLine() string {
	if m.err == nil {
		return ""
	}
	return "\n" + m.styles.err.Render(fmt.Sprintf("Error: %v", m.err))
}
