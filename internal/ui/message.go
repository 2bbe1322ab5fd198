package ui

import (
	"github.com/desertbloom/stockpix/internal/models"
	"github.com/desertbloom/stockpix/internal/session"
)

// Messages delivered to [Model.Update] when asynchronous commands complete.
// One type per operation so Update can switch on results directly.

type sessionResolvedMsg struct {
	status session.Status
}

type loginDoneMsg struct {
	user *models.User
	err  error
}

type logoutDoneMsg struct{}

type imagesLoadedMsg struct {
	items []models.MediaItem
	err   error
}

type reorderDoneMsg struct {
	err error
}

type retitleDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type uploadDoneMsg struct {
	err error
}
