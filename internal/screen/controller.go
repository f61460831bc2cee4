// Package screen owns the post screen's state: the fetched posts, the
// search query, and the loading, skeleton and error flags. UI layers read
// Snapshots and send user actions; they never mutate state directly.
package screen

import (
	"context"
	"sync"
	"time"

	"github.com/matheus3301/posts/internal/bus"
	"github.com/matheus3301/posts/internal/posts"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FetchFailedMessage is the only error text shown to the user.
const FetchFailedMessage = "Unable to fetch posts. Check your network connection"

// Fetcher retrieves the full post collection.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]posts.Post, error)
}

// QueryStore restores the query once at mount and accepts fire-and-forget
// writes afterwards.
type QueryStore interface {
	Load(ctx context.Context) (string, bool, error)
	Submit(value string)
}

// Scheduler runs fn once after d and returns a function that cancels it.
// fn must run on another goroutine; it is never called synchronously.
type Scheduler func(d time.Duration, fn func()) (cancel func())

// AfterFunc is the default Scheduler, backed by time.AfterFunc.
func AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Options configures a Controller.
type Options struct {
	// Dwell is how long the skeleton stays up after a successful fetch.
	// Zero goes straight to content.
	Dwell    time.Duration
	Schedule Scheduler
	Bus      *bus.Bus
	Logger   *zap.Logger
}

// Snapshot is an immutable view of the screen.
type Snapshot struct {
	State          State
	Mode           Mode
	Loading        bool
	SkeletonActive bool
	Query          string
	QueryRestored  bool
	Error          string
	Visible        []posts.Post
	Total          int
	Generation     uint64
}

// Empty reports whether the content list has nothing to show.
func (s Snapshot) Empty() bool {
	return s.Mode == ModeContent && len(s.Visible) == 0
}

// Controller sequences fetches, query restore and persistence, and derives
// the visible list.
type Controller struct {
	fetcher Fetcher
	queries QueryStore
	machine *Machine
	bus     *bus.Bus
	logger  *zap.Logger
	dwell   time.Duration
	sched   Scheduler

	mu          sync.Mutex
	ctx         context.Context
	posts       []posts.Post
	query       string
	queryEdited bool
	restored    bool
	errMsg      string
	generation  uint64
	cancelDwell func()

	group errgroup.Group
}

// NewController creates a controller in the Idle state.
func NewController(f Fetcher, q QueryStore, opts Options) *Controller {
	if opts.Schedule == nil {
		opts.Schedule = AfterFunc
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Controller{
		fetcher: f,
		queries: q,
		machine: NewMachine(opts.Bus),
		bus:     opts.Bus,
		logger:  opts.Logger,
		dwell:   opts.Dwell,
		sched:   opts.Schedule,
	}
}

// Mount enters Loading and starts the post fetch and the query restore.
// The two run concurrently with no ordering between them. ctx bounds every
// background operation the controller starts, including later retries.
func (c *Controller) Mount(ctx context.Context) {
	c.mu.Lock()
	if c.ctx != nil {
		c.mu.Unlock()
		c.logger.Warn("screen already mounted")
		return
	}
	c.ctx = ctx
	c.mu.Unlock()

	c.startFetch()
	c.group.Go(func() error {
		c.restoreQuery(ctx)
		return nil
	})
}

// Retry clears any error, re-enters Loading and issues exactly one new
// fetch. It is a no-op before Mount.
func (c *Controller) Retry() {
	c.mu.Lock()
	mounted := c.ctx != nil
	hadErr := c.errMsg != ""
	c.errMsg = ""
	c.mu.Unlock()

	if !mounted {
		return
	}
	if hadErr {
		c.bus.Emit(EventErrorCleared, nil)
	}
	c.startFetch()
}

// Dismiss clears the error without fetching again.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	hadErr := c.errMsg != ""
	c.errMsg = ""
	c.mu.Unlock()

	if hadErr {
		c.bus.Emit(EventErrorCleared, nil)
	}
}

// SetQuery replaces the query and submits it for persistence. It does not
// change the screen state.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	if c.query == q && c.queryEdited {
		c.mu.Unlock()
		return
	}
	c.query = q
	c.queryEdited = true
	c.mu.Unlock()

	if c.queries != nil {
		c.queries.Submit(q)
	}
	c.bus.Emit(EventQueryChanged, q)
}

// Snapshot returns the current view, re-deriving the visible list.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	all := c.posts
	query := c.query
	s := Snapshot{
		Query:         query,
		QueryRestored: c.restored,
		Error:         c.errMsg,
		Total:         len(all),
		Generation:    c.generation,
		State:         c.machine.Current(),
	}
	c.mu.Unlock()

	s.Loading = s.State == Idle || s.State == Loading
	s.SkeletonActive = s.State == SkeletonDisplay
	s.Mode = ResolveMode(s.Loading, s.SkeletonActive)
	s.Visible = posts.Filter(all, query)
	return s
}

// Post returns the loaded post with the given id.
func (c *Controller) Post(id int64) (posts.Post, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.posts {
		if p.ID == id {
			return p, true
		}
	}
	return posts.Post{}, false
}

// Wait blocks until in-flight fetches and query restores finish. The
// goroutines report failures through state and events, never through the
// group, so there is no error to return.
func (c *Controller) Wait() {
	_ = c.group.Wait()
}

// Close cancels a pending skeleton dwell timer.
func (c *Controller) Close() {
	c.mu.Lock()
	c.stopDwellLocked()
	c.mu.Unlock()
}

func (c *Controller) startFetch() {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.stopDwellLocked()
	ctx := c.ctx
	if err := c.machine.Transition(Loading); err != nil {
		c.logger.Error("enter loading", zap.Error(err))
	}
	c.mu.Unlock()

	c.logger.Debug("fetch started", zap.Uint64("generation", gen))
	c.group.Go(func() error {
		result, err := c.fetcher.FetchAll(ctx)
		c.finishFetch(gen, result, err)
		return nil
	})
}

func (c *Controller) finishFetch(gen uint64, result []posts.Post, err error) {
	c.mu.Lock()
	if gen != c.generation {
		current := c.generation
		c.mu.Unlock()
		c.logger.Info("discarding stale fetch result",
			zap.Uint64("generation", gen), zap.Uint64("current", current))
		c.bus.Emit(EventStaleDropped, gen)
		return
	}

	if err != nil {
		c.errMsg = FetchFailedMessage
		if terr := c.machine.Transition(Content); terr != nil {
			c.logger.Error("leave loading", zap.Error(terr))
		}
		c.mu.Unlock()
		c.logger.Warn("fetch failed", zap.Uint64("generation", gen), zap.Error(err))
		c.bus.Emit(EventFetchFailed, err)
		return
	}

	c.posts = result
	c.errMsg = ""
	next := Content
	if c.dwell > 0 {
		next = SkeletonDisplay
		c.cancelDwell = c.sched(c.dwell, func() { c.endDwell(gen) })
	}
	if terr := c.machine.Transition(next); terr != nil {
		c.logger.Error("leave loading", zap.Error(terr))
	}
	c.mu.Unlock()

	c.logger.Info("posts loaded", zap.Uint64("generation", gen), zap.Int("count", len(result)))
	c.bus.Emit(EventPostsLoaded, len(result))
}

func (c *Controller) endDwell(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.machine.Current() != SkeletonDisplay {
		c.mu.Unlock()
		return
	}
	c.cancelDwell = nil
	if err := c.machine.Transition(Content); err != nil {
		c.logger.Error("leave skeleton", zap.Error(err))
	}
	c.mu.Unlock()
}

func (c *Controller) stopDwellLocked() {
	if c.cancelDwell != nil {
		c.cancelDwell()
		c.cancelDwell = nil
	}
}

func (c *Controller) restoreQuery(ctx context.Context) {
	if c.queries == nil {
		return
	}
	saved, ok, err := c.queries.Load(ctx)
	if err != nil {
		c.logger.Warn("load saved query failed", zap.Error(err))
		return
	}
	if !ok || saved == "" {
		return
	}

	c.mu.Lock()
	if c.queryEdited {
		c.mu.Unlock()
		c.logger.Debug("saved query ignored, user already typed")
		return
	}
	c.query = saved
	c.restored = true
	c.mu.Unlock()

	c.bus.Emit(EventQueryRestored, saved)
}
