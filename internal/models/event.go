package models

// Event types published when entities change.
const (
	EventPetCreated          = "pet.created"
	EventPetUpdated          = "pet.updated"
	EventPetDeleted          = "pet.deleted"
	EventHealthRecordCreated = "health_record.created"
	EventHealthRecordUpdated = "health_record.updated"
	EventHealthRecordDeleted = "health_record.deleted"
	EventReminderCreated     = "reminder.created"
	EventReminderUpdated     = "reminder.updated"
	EventReminderDeleted     = "reminder.deleted"
	EventUserRegistered      = "user.registered"
)

// Event describes a change to a user-owned entity.
type Event struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Type      string `json:"type"`      // One of the Event* constants
	Timestamp int64  `json:"timestamp"` // Unix timestamp (seconds) of the change
	UserID    string `json:"user_id"`   // Acting user
	EntityID  string `json:"entity_id"` // Changed entity
	PetID     string `json:"pet_id"`    // Pet scope, empty for users
}
