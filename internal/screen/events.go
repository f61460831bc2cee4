package screen

// Bus event kinds published by the controller. All share the "screen."
// namespace so a single subscription drives redraws.
const (
	EventStateChanged  = "screen.state_changed"
	EventPostsLoaded   = "screen.posts_loaded"
	EventFetchFailed   = "screen.fetch_failed"
	EventStaleDropped  = "screen.stale_dropped"
	EventQueryChanged  = "screen.query_changed"
	EventQueryRestored = "screen.query_restored"
	EventErrorCleared  = "screen.error_cleared"
)
