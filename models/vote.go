package models

import "time"

// Vote records that a user voted for an epic. At most one exists per
// (EpicKey, UserID) pair.
type Vote struct {
	EpicKey   string    `json:"epic_key"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteStatus is the per-epic view shown to a single user.
type VoteStatus struct {
	EpicKey  string `json:"epic_key"`
	Count    int    `json:"count"`
	HasVoted bool   `json:"has_voted"`
}

type EpicKeyParams struct {
	EpicKey string `json:"epic_key" validate:"required,epickey"`
}

type EpicKeysRequest struct {
	EpicKeys []string `json:"epic_keys" validate:"required,min=1,max=1000,dive,required,epickey"`
}
