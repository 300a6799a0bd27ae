package session

// NotificationKind tells how a notification should be presented
type NotificationKind int

const (
	NotifyInfo NotificationKind = iota
	NotifyError
)

// String returns the kind name
func (k NotificationKind) String() string {
	if k == NotifyError {
		return "error"
	}
	return "info"
}

// Notification is a user-facing message about a load, save or export
type Notification struct {
	Kind    NotificationKind
	Message string
}

func (s *Session) info(msg string) {
	s.notify(Notification{Kind: NotifyInfo, Message: msg})
}

func (s *Session) fail(msg string, err error) {
	s.notify(Notification{Kind: NotifyError, Message: msg + ": " + err.Error()})
}

func (s *Session) notify(n Notification) {
	s.mu.RLock()
	callback := s.onNotify
	s.mu.RUnlock()

	if callback != nil {
		callback(n)
	}
}

func (s *Session) changed() {
	s.mu.RLock()
	callback := s.onChange
	s.mu.RUnlock()

	if callback != nil {
		callback()
	}
}
