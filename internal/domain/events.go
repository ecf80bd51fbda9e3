package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged        EventType = "QueryChanged"
	EventResultsUpdated      EventType = "ResultsUpdated"
	EventResultsCleared      EventType = "ResultsCleared"
	EventModeToggled         EventType = "ModeToggled"
	EventNotificationShown   EventType = "NotificationShown"
	EventNotificationExpired EventType = "NotificationExpired"
	EventActivationFailed    EventType = "ActivationFailed"
	EventDatasetLoaded       EventType = "DatasetLoaded"
	EventDatasetReloadFailed EventType = "DatasetReloadFailed"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted when the live query text changes
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// ResultsUpdatedEvent is emitted after a non-empty query was matched
type ResultsUpdatedEvent struct {
	Query string
	Total int // all matches, before the display cap
	Shown int
}

func (e ResultsUpdatedEvent) Type() EventType { return EventResultsUpdated }

// ResultsClearedEvent is emitted when the query becomes blank
type ResultsClearedEvent struct{}

func (e ResultsClearedEvent) Type() EventType { return EventResultsCleared }

// ModeToggledEvent is emitted when the user flips copy/export
type ModeToggledEvent struct {
	Mode Mode
}

func (e ModeToggledEvent) Type() EventType { return EventModeToggled }

// NotificationShownEvent is emitted when an action completed
type NotificationShownEvent struct {
	Notification Notification
}

func (e NotificationShownEvent) Type() EventType { return EventNotificationShown }

// NotificationExpiredEvent is emitted when the notification timer fires
type NotificationExpiredEvent struct {
	Seq uint64
}

func (e NotificationExpiredEvent) Type() EventType { return EventNotificationExpired }

// ActivationFailedEvent is emitted when copy or export failed silently
type ActivationFailedEvent struct {
	Glyph Glyph
	Mode  Mode
	Err   error
}

func (e ActivationFailedEvent) Type() EventType { return EventActivationFailed }

// DatasetLoadedEvent is emitted when a dataset was (re)loaded
type DatasetLoadedEvent struct {
	Source string
	Count  int
}

func (e DatasetLoadedEvent) Type() EventType { return EventDatasetLoaded }

// DatasetReloadFailedEvent is emitted when a watched dataset could not be reloaded
type DatasetReloadFailedEvent struct {
	Source string
	Err    error
}

func (e DatasetReloadFailedEvent) Type() EventType { return EventDatasetReloadFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
