// Package service defines cross-cutting collaborator interfaces consumed by
// the usecase layer.
package service

// NotificationKind distinguishes success from error notifications.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notifier is the fire-and-forget sink for user-facing notifications. The
// core never blocks on it and never inspects a result.
type Notifier interface {
	Notify(kind NotificationKind, title, detail string)
}
