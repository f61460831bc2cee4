// Package tui is the terminal front end of the post screen. It renders
// controller snapshots and forwards user actions; all state lives in the
// screen controller.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/posts/internal/bus"
	"github.com/matheus3301/posts/internal/posts"
	"github.com/matheus3301/posts/internal/screen"
	"github.com/matheus3301/posts/internal/tui/keys"
	"github.com/matheus3301/posts/internal/tui/ui"
	"github.com/matheus3301/posts/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	pagePosts = "posts"
	pagePost  = "post"
	pageHelp  = "help"

	listLoading  = "loading"
	listSkeleton = "skeleton"
	listContent  = "content"
)

// Options configures the TUI.
type Options struct {
	Controller *screen.Controller
	Bus        *bus.Bus
	Logger     *zap.Logger
	Profile    string
	Endpoint   string
}

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	ctrl     *screen.Controller
	bus      *bus.Bus
	logger   *zap.Logger
	profile  string
	endpoint string
	theme    *ui.Theme
	registry *keys.Registry

	root     *tview.Flex
	pages    *ui.Pages
	crumbs   *ui.Crumbs
	menu     *ui.Menu
	flash    *ui.FlashModel
	flashBar *ui.FlashBar
	prompt   *ui.Prompt
	errorBar *ui.ErrorBar
	info     *ui.FeedInfo

	search   *views.SearchBar
	listArea *tview.Pages
	list     *views.PostList
	skeleton *views.Skeleton
	loading  *views.Loading
	detail   *views.PostDetail
	help     *views.HelpView

	mode         screen.Mode
	modeShown    bool
	promptActive bool
}

// NewApp creates the TUI application.
func NewApp(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	theme := ui.DefaultTheme()
	tapp := tview.NewApplication()
	queue := func(fn func()) { tapp.QueueUpdateDraw(fn) }

	a := &App{
		app:      tapp,
		ctrl:     opts.Controller,
		bus:      opts.Bus,
		logger:   opts.Logger,
		profile:  opts.Profile,
		endpoint: opts.Endpoint,
		theme:    theme,
		registry: keys.NewRegistry(),
		pages:    ui.NewPages(),
		crumbs:   ui.NewCrumbs(theme),
		menu:     ui.NewMenu(theme),
		flash:    ui.NewFlashModel(),
		flashBar: ui.NewFlashBar(theme),
		prompt:   ui.NewPrompt(theme),
		errorBar: ui.NewErrorBar(theme),
		info:     ui.NewFeedInfo(theme),
		search:   views.NewSearchBar(theme),
		listArea: tview.NewPages(),
		list:     views.NewPostList(theme),
		skeleton: views.NewSkeleton(theme, queue),
		loading:  views.NewLoading(theme, queue),
		detail:   views.NewPostDetail(theme, opts.Endpoint),
		help:     views.NewHelpView(theme),
	}

	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	return a
}

func (a *App) setupBindings() {
	a.registry.AddView(pagePosts, &keys.Action{
		Name: "search", Key: tcell.KeyRune, Rune: '/',
		Label: "/", Description: "Search", Visible: true,
		Handler: a.focusSearch,
	})
	a.registry.AddView(pagePosts, &keys.Action{
		Name: "open", Key: tcell.KeyEnter,
		Label: "Enter", Description: "Open", Visible: true,
		Handler: a.list.Open,
	})
	a.registry.AddView(pagePosts, &keys.Action{
		Name: "retry", Key: tcell.KeyRune, Rune: 'r',
		Label: "r", Description: "Retry", Visible: true,
		Handler: a.errorBar.Retry,
	})
	a.registry.AddView(pagePosts, &keys.Action{
		Name: "dismiss", Key: tcell.KeyRune, Rune: 'x',
		Label: "x", Description: "Dismiss",
		Handler: a.errorBar.Dismiss,
	})

	a.registry.AddGlobal(&keys.Action{
		Name: "command", Key: tcell.KeyRune, Rune: ':',
		Label: ":", Description: "Command", Visible: true,
		Handler: a.showPrompt,
	})
	a.registry.AddGlobal(&keys.Action{
		Name: "help", Key: tcell.KeyRune, Rune: '?',
		Label: "?", Description: "Help", Visible: true,
		Handler: a.showHelp,
	})
	a.registry.AddGlobal(&keys.Action{
		Name: "quit", Key: tcell.KeyRune, Rune: 'q',
		Label: "q", Description: "Quit", Visible: true,
		Handler: a.back,
	})
	a.registry.AddGlobal(&keys.Action{
		Name: "back", Key: tcell.KeyEscape,
		Handler: func() {
			if a.pages.Pop() != "" {
				a.focusCurrent()
			}
		},
	})
	a.registry.AddGlobal(&keys.Action{
		Name: "refresh", Key: tcell.KeyCtrlR,
		Handler: a.ctrl.Retry,
	})
}

func (a *App) setupCallbacks() {
	a.search.SetOnChange(func(text string) {
		a.ctrl.SetQuery(text)
		a.refresh()
	})
	a.list.SetOnOpen(a.openPost)

	a.errorBar.SetOnRetry(a.ctrl.Retry)
	a.errorBar.SetOnDismiss(a.ctrl.Dismiss)

	a.prompt.SetOnSubmit(func(text string) {
		a.hidePrompt()
		a.execute(text)
	})
	a.prompt.SetOnCancel(a.hidePrompt)

	a.pages.SetOnChange(func(stack []string) {
		a.crumbs.Update(stack)
		a.updateMenu()
	})
}

func (a *App) setupLayout() {
	header := tview.NewFlex().
		AddItem(ui.NewLogo(a.theme), 18, 0, false).
		AddItem(a.info, 0, 1, false)

	a.listArea.AddPage(listLoading, a.loading, true, true)
	a.listArea.AddPage(listSkeleton, a.skeleton, true, false)
	a.listArea.AddPage(listContent, a.list, true, false)

	postsPage := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.search, 3, 0, false).
		AddItem(a.listArea, 0, 1, true)

	a.crumbs.SetLabel(pagePosts, "Posts")
	a.crumbs.SetLabel(pageHelp, "Help")
	a.pages.Add(pagePosts, postsPage)
	a.pages.Add(pagePost, a.detail)
	a.pages.Add(pageHelp, a.help)

	footer := tview.NewFlex().
		AddItem(a.menu, 0, 2, false).
		AddItem(a.flashBar, 0, 1, false)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 3, 0, false).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.errorBar, 0, 0, false).
		AddItem(a.prompt, 0, 0, false).
		AddItem(footer, 1, 0, false)

	a.errorBar.SetOnResize(func(height int) {
		a.root.ResizeItem(a.errorBar, height, 0)
	})

	a.pages.Reset(pagePosts)
	a.app.SetRoot(a.root, true)
	a.app.SetFocus(a.list)
	a.app.SetInputCapture(a.handleKey)
	a.app.EnableMouse(true)
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if a.promptActive {
		return ev
	}

	if a.search.HasFocus() {
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyDown, tcell.KeyTab:
			a.focusList()
			return nil
		case tcell.KeyCtrlR:
			a.ctrl.Retry()
			return nil
		}
		return ev
	}

	if a.registry.HandleEvent(a.pages.Current(), ev) {
		return nil
	}
	return ev
}

// Run mounts the screen and blocks until the UI exits. Cancelling ctx also
// cancels in-flight fetches.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, unsubscribe := a.bus.Subscribe("screen.", 64)
	defer unsubscribe()
	go a.watch(ctx, events)
	go a.watchFlash(ctx)

	a.refresh()
	a.ctrl.Mount(ctx)
	err := a.app.Run()

	a.loading.Stop()
	a.skeleton.Stop()
	return err
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.app.Stop()
}

func (a *App) watch(ctx context.Context, events <-chan bus.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			a.app.QueueUpdateDraw(func() { a.onEvent(evt) })
		}
	}
}

func (a *App) watchFlash(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-a.flash.Watch():
			a.app.QueueUpdateDraw(func() { a.flashBar.Update(&msg) })
			time.AfterFunc(time.Until(msg.Expires), func() {
				a.app.QueueUpdateDraw(func() { a.flashBar.Update(a.flash.GetMessage()) })
			})
		}
	}
}

func (a *App) onEvent(evt bus.Event) {
	switch evt.Kind {
	case screen.EventPostsLoaded:
		if n, ok := evt.Payload.(int); ok {
			a.flash.Info(fmt.Sprintf("Loaded %d posts", n))
		}
	case screen.EventQueryRestored:
		if q, ok := evt.Payload.(string); ok {
			a.flash.Info(fmt.Sprintf("Restored search %q", q))
		}
	}
	a.refresh()
}

// refresh renders the current controller snapshot. It must run on the UI
// goroutine.
func (a *App) refresh() {
	s := a.ctrl.Snapshot()

	a.search.Sync(s.Query)
	a.info.Update(ui.FeedData{
		Profile:  a.profile,
		Endpoint: a.endpoint,
		State:    string(s.State),
		Visible:  len(s.Visible),
		Total:    s.Total,
		Query:    s.Query,
	})
	a.errorBar.Show(s.Error)
	a.list.Update(s.Visible)
	a.showMode(s.Mode)
	a.updateMenu()
}

func (a *App) showMode(m screen.Mode) {
	if a.modeShown && m == a.mode {
		return
	}
	a.mode, a.modeShown = m, true

	switch m {
	case screen.ModeLoading:
		a.skeleton.Stop()
		a.listArea.SwitchToPage(listLoading)
		a.loading.Start()
	case screen.ModeSkeleton:
		a.loading.Stop()
		a.listArea.SwitchToPage(listSkeleton)
		a.skeleton.Start()
	default:
		a.loading.Stop()
		a.skeleton.Stop()
		a.listArea.SwitchToPage(listContent)
	}
}

func (a *App) updateMenu() {
	var hints []ui.MenuHint
	switch {
	case a.search.HasFocus():
		hints = []ui.MenuHint{{Key: "Enter", Description: "Done"}, {Key: "Esc", Description: "Back"}}
	default:
		hints = append(a.pages.Hints(), a.registry.Hints(a.pages.Current())...)
		if a.pages.Current() == pagePosts && a.errorBar.Visible() {
			hints = append(hints, ui.MenuHint{Key: "x", Description: "Dismiss"})
		}
	}
	a.menu.Update(hints)
}

func (a *App) focusSearch() {
	a.app.SetFocus(a.search.InputField)
	a.updateMenu()
}

func (a *App) focusList() {
	a.app.SetFocus(a.list)
	a.updateMenu()
}

func (a *App) openPost(p posts.Post) {
	a.detail.Show(p)
	a.crumbs.SetLabel(pagePost, fmt.Sprintf("Post #%d", p.ID))
	if a.pages.Current() == pagePost {
		a.crumbs.Update(a.pages.Stack())
	} else {
		a.pages.Push(pagePost)
	}
	a.app.SetFocus(a.detail)
}

func (a *App) showHelp() {
	if a.pages.Current() == pageHelp {
		return
	}
	a.pages.Push(pageHelp)
	a.app.SetFocus(a.help)
}

// back pops the page stack, or quits from the root page.
func (a *App) back() {
	if a.pages.Pop() == "" {
		a.app.Stop()
		return
	}
	a.focusCurrent()
}

func (a *App) focusCurrent() {
	switch a.pages.Current() {
	case pagePost:
		a.app.SetFocus(a.detail)
	case pageHelp:
		a.app.SetFocus(a.help)
	default:
		a.focusList()
	}
}

func (a *App) showPrompt() {
	a.promptActive = true
	a.root.ResizeItem(a.prompt, 3, 0)
	a.app.SetFocus(a.prompt)
}

func (a *App) hidePrompt() {
	a.promptActive = false
	a.root.ResizeItem(a.prompt, 0, 0)
	a.focusCurrent()
}

// execute runs a ':' command.
func (a *App) execute(input string) {
	cmd := ParseCommand(input)
	switch cmd.Canonical() {
	case "retry":
		a.ctrl.Retry()
	case "dismiss":
		a.ctrl.Dismiss()
	case "clear":
		a.search.Sync("")
		a.ctrl.SetQuery("")
		a.refresh()
	case "open":
		id, err := cmd.PostID()
		if err != nil {
			a.flash.Warn(err.Error())
			return
		}
		p, ok := a.ctrl.Post(id)
		if !ok {
			a.flash.Warn(fmt.Sprintf("Post %d not found", id))
			return
		}
		a.openPost(p)
	case "help":
		a.showHelp()
	case "quit":
		a.app.Stop()
	case "":
	default:
		a.flash.Warn(fmt.Sprintf("Unknown command: %s", cmd.Name))
		a.logger.Debug("unknown command", zap.String("input", input))
	}
}
