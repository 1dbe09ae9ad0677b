package handlers

import (
	"worklog-tracker/internal/store"

	"go.uber.org/zap"
)

// Set bundles the stores and logger the handlers work against. Everything is
// injected; handlers hold no package-level state.
type Set struct {
	users  store.CredentialStore
	logs   store.LogStore
	alerts store.AlertStore
	log    *zap.Logger
}

func New(users store.CredentialStore, logs store.LogStore, alerts store.AlertStore, log *zap.Logger) *Set {
	return &Set{users: users, logs: logs, alerts: alerts, log: log}
}
