package handler

const (
	// RootPath is the root path of a route group.
	RootPath = "/"

	// IDPath is the ":id" segment of an item route.
	IDPath = "/:id"

	// ErrNilACSFatalLogMsg is used if the app, cfg or store pointer is nil.
	ErrNilACSFatalLogMsg = "app, cfg or store is nil"
)
