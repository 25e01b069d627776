package tui

import "sync/atomic"

var sessionUsername atomic.Value

func setSessionUsername(username string) {
	sessionUsername.Store(username)
}

func getSessionUsername() string {
	v, _ := sessionUsername.Load().(string)
	return v
}

func clearSessionUsername() {
	sessionUsername.Store("")
}
