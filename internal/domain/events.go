package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates the state-change notifications the engine emits.
type EventType string

const (
	EventDeposit             EventType = "DEPOSIT"
	EventWithdraw            EventType = "WITHDRAW"
	EventAdapterSwitch       EventType = "ADAPTER_SWITCH"
	EventHarvest             EventType = "HARVEST"
	EventPreferenceUpdate    EventType = "PREFERENCE_UPDATE"
	EventDistribution        EventType = "DISTRIBUTION"
	EventClaim               EventType = "CLAIM"
	EventEscrowRelease       EventType = "ESCROW_RELEASE"
	EventEscrowRefund        EventType = "ESCROW_REFUND"
	EventCheckpointScheduled EventType = "CHECKPOINT_SCHEDULED"
	EventCheckpointVoted     EventType = "CHECKPOINT_VOTED"
	EventCheckpointFinalized EventType = "CHECKPOINT_FINALIZED"
	EventEmergencyPause      EventType = "EMERGENCY_PAUSE"
	EventEmergencyShutdown   EventType = "EMERGENCY_SHUTDOWN"
	EventEmergencyResume     EventType = "EMERGENCY_RESUME"
	EventEmergencyWithdraw   EventType = "EMERGENCY_WITHDRAW"
	EventCampaignHalted      EventType = "CAMPAIGN_HALTED"
	EventCampaignResumed     EventType = "CAMPAIGN_RESUMED"
)

// eventSchemaVersion is bumped whenever a payload key is added. Keys are
// append-only; existing keys are never renamed or reinterpreted.
const eventSchemaVersion = 1

// Event is a state-change notification handed to the recorder.
type Event struct {
	Type          EventType
	At            time.Time
	Actor         uuid.UUID
	VaultID       *uuid.UUID
	CampaignID    *uuid.UUID
	CheckpointID  *uuid.UUID
	Payload       map[string]string
	SchemaVersion int
}

// NewEvent builds an event with the current payload schema version.
func NewEvent(t EventType, at time.Time, actor uuid.UUID) *Event {
	return &Event{
		Type:          t,
		At:            at,
		Actor:         actor,
		Payload:       make(map[string]string),
		SchemaVersion: eventSchemaVersion,
	}
}

// WithVault attaches a vault ID.
func (e *Event) WithVault(id uuid.UUID) *Event {
	e.VaultID = &id
	return e
}

// WithCampaign attaches a campaign ID.
func (e *Event) WithCampaign(id uuid.UUID) *Event {
	e.CampaignID = &id
	return e
}

// WithCheckpoint attaches a checkpoint ID.
func (e *Event) WithCheckpoint(id uuid.UUID) *Event {
	e.CheckpointID = &id
	return e
}

// With adds a payload value.
func (e *Event) With(key, value string) *Event {
	e.Payload[key] = value
	return e
}
