// Package sync keeps wikis in line with the projects that own them. Project
// messages are applied idempotently as the system actor; reads that miss a
// wiki can ask the project service to resend its state.
package sync

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

// MessageType discriminates project messages on the wire.
type MessageType string

const (
	TypeProjectCreated          MessageType = "ProjectCreated"
	TypeProjectUpdated          MessageType = "ProjectUpdated"
	TypeProjectUpdatedDetails   MessageType = "ProjectUpdatedDetails"
	TypeProjectUpdatedOwnership MessageType = "ProjectUpdatedOwnership"
	TypeProjectMemberAdded      MessageType = "ProjectMemberAdded"
	TypeProjectMemberRemoved    MessageType = "ProjectMemberRemoved"
	TypeProjectDeleted          MessageType = "ProjectDeleted"
)

// ErrUnknownMessage is returned by Decode for an unrecognised type.
var ErrUnknownMessage = errors.New("unknown project message")

// Message is one decoded project message.
type Message interface {
	Type() MessageType
	Project() uuid.UUID
}

// Envelope is the record value: a type tag and the message body.
type Envelope struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data"`
}

type ProjectMember struct {
	UserID  string `json:"userId"`
	IsOwner bool   `json:"isOwner"`
}

// ProjectState is the full project snapshot carried by created/updated messages.
type ProjectState struct {
	ProjectID       uuid.UUID       `json:"projectId"`
	ProjectName     string          `json:"projectName"`
	ProjectSlug     string          `json:"projectSlug"`
	ProjectImageURL *string         `json:"projectImageUrl,omitempty"`
	Members         []ProjectMember `json:"members"`
}

type ProjectCreated struct{ ProjectState }

type ProjectUpdated struct{ ProjectState }

type ProjectUpdatedDetails struct {
	ProjectID       uuid.UUID `json:"projectId"`
	ProjectName     string    `json:"projectName"`
	ProjectSlug     string    `json:"projectSlug"`
	ProjectImageURL *string   `json:"projectImageUrl,omitempty"`
}

type ProjectUpdatedOwnership struct {
	ProjectID        uuid.UUID `json:"projectId"`
	FromUserID       string    `json:"fromUserId"`
	ToUserID         string    `json:"toUserId"`
	PerformingUserID string    `json:"performingUserId,omitempty"`
}

type ProjectMemberAdded struct {
	ProjectID        uuid.UUID `json:"projectId"`
	UserID           string    `json:"userId"`
	PerformingUserID string    `json:"performingUserId,omitempty"`
}

type ProjectMemberRemoved struct {
	ProjectID        uuid.UUID `json:"projectId"`
	UserID           string    `json:"userId"`
	PerformingUserID string    `json:"performingUserId,omitempty"`
}

type ProjectDeleted struct {
	ProjectID uuid.UUID `json:"projectId"`
}

func (ProjectCreated) Type() MessageType          { return TypeProjectCreated }
func (ProjectUpdated) Type() MessageType          { return TypeProjectUpdated }
func (ProjectUpdatedDetails) Type() MessageType   { return TypeProjectUpdatedDetails }
func (ProjectUpdatedOwnership) Type() MessageType { return TypeProjectUpdatedOwnership }
func (ProjectMemberAdded) Type() MessageType      { return TypeProjectMemberAdded }
func (ProjectMemberRemoved) Type() MessageType    { return TypeProjectMemberRemoved }
func (ProjectDeleted) Type() MessageType          { return TypeProjectDeleted }

func (m ProjectState) Project() uuid.UUID            { return m.ProjectID }
func (m ProjectUpdatedDetails) Project() uuid.UUID   { return m.ProjectID }
func (m ProjectUpdatedOwnership) Project() uuid.UUID { return m.ProjectID }
func (m ProjectMemberAdded) Project() uuid.UUID      { return m.ProjectID }
func (m ProjectMemberRemoved) Project() uuid.UUID    { return m.ProjectID }
func (m ProjectDeleted) Project() uuid.UUID          { return m.ProjectID }

// Decode parses an envelope into its typed message.
func Decode(data []byte) (Message, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	var m Message
	switch env.Type {
	case TypeProjectCreated:
		m = &ProjectCreated{}
	case TypeProjectUpdated:
		m = &ProjectUpdated{}
	case TypeProjectUpdatedDetails:
		m = &ProjectUpdatedDetails{}
	case TypeProjectUpdatedOwnership:
		m = &ProjectUpdatedOwnership{}
	case TypeProjectMemberAdded:
		m = &ProjectMemberAdded{}
	case TypeProjectMemberRemoved:
		m = &ProjectMemberRemoved{}
	case TypeProjectDeleted:
		m = &ProjectDeleted{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, env.Type)
	}
	if err := json.Unmarshal(env.Data, m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", env.Type, err)
	}
	if m.Project() == uuid.Nil {
		return nil, fmt.Errorf("decode %s: projectId is required", env.Type)
	}
	return m, nil
}

// Encode wraps m in an envelope.
func Encode(m Message) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: m.Type(), Data: data})
}

// ResyncRequest asks the project service to republish a project's state.
type ResyncRequest struct {
	ProjectID   uuid.UUID `json:"projectId"`
	RequestedAt time.Time `json:"requestedAt"`
}
