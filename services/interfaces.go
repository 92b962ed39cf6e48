package services

import (
	"context"
	"epic-votes/models"
)

// VoteRepository defines the interface for vote data access
type VoteRepository interface {
	AddVote(ctx context.Context, epicKey, userID string) (bool, error)
	RemoveVote(ctx context.Context, epicKey, userID string) (bool, error)
	HasVoted(ctx context.Context, epicKey, userID string) (bool, error)
	GetVoteCount(ctx context.Context, epicKey string) (int, error)
	GetVotesForEpics(ctx context.Context, epicKeys []string) (map[string]int, error)
	ListVoters(ctx context.Context, epicKey string) ([]models.Vote, error)
	ListUserVotes(ctx context.Context, userID string) ([]string, error)
}
