package service

const (
	EventNotification = "notification"
	EventMessage      = "message"
	EventRoomUpdated  = "room_updated"
)

// Notifier pushes an event to every live connection of a user. Delivery is best-effort.
type Notifier interface {
	NotifyUser(userID, event string, payload interface{})
}
