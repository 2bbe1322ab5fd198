// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for gallery management:
//  1. [ResolvingView] : Neutral spinner while the session status is unresolved
//  2. [LoginView] : Email/password entry for unauthenticated sessions
//  3. [HomeView] : Navigation hub (gallery, upload, logout)
//  4. [GalleryView] : Browse, reorder, retitle, and delete persisted images
//  5. [UploadView] : Stage local files, edit titles, submit the batch
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. All
// state mutation happens in Update on the program goroutine; network
// operations run as commands whose results return as messages, so the
// interface stays responsive while a submission is outstanding.
//
// Protected views (gallery, upload) are gated by the session guard: the model
// never leaves [ResolvingView] until the initial session check completes, so
// protected content cannot flash before resolution.
//
// Keyboard navigation uses vim-style bindings (j/k to move the cursor, J/K to
// move an image, enter, esc, q) with contextual help displayed via
// charmbracelet/bubbles/help.
package ui
