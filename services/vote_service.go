package services

import (
	"context"
	"epic-votes/models"
	"strings"
)

// VoteService handles business logic for epic votes
type VoteService struct {
	repo VoteRepository
}

// NewVoteService creates a new vote service
func NewVoteService(repo VoteRepository) *VoteService {
	return &VoteService{repo: repo}
}

// Vote records the user's vote and reports whether it is new
func (vs *VoteService) Vote(ctx context.Context, epicKey, userID string) (bool, error) {
	epicKey, userID, err := normalizePair(epicKey, userID)
	if err != nil {
		return false, err
	}
	return vs.repo.AddVote(ctx, epicKey, userID)
}

// Unvote removes the user's vote and reports whether there was one
func (vs *VoteService) Unvote(ctx context.Context, epicKey, userID string) (bool, error) {
	epicKey, userID, err := normalizePair(epicKey, userID)
	if err != nil {
		return false, err
	}
	return vs.repo.RemoveVote(ctx, epicKey, userID)
}

func (vs *VoteService) HasVoted(ctx context.Context, epicKey, userID string) (bool, error) {
	epicKey, userID, err := normalizePair(epicKey, userID)
	if err != nil {
		return false, err
	}
	return vs.repo.HasVoted(ctx, epicKey, userID)
}

func (vs *VoteService) Count(ctx context.Context, epicKey string) (int, error) {
	epicKey = strings.TrimSpace(epicKey)
	if epicKey == "" {
		return 0, ErrInvalidEpicKey
	}
	return vs.repo.GetVoteCount(ctx, epicKey)
}

// Status returns the vote count of an epic and whether userID voted for it
func (vs *VoteService) Status(ctx context.Context, epicKey, userID string) (*models.VoteStatus, error) {
	epicKey, userID, err := normalizePair(epicKey, userID)
	if err != nil {
		return nil, err
	}

	count, err := vs.repo.GetVoteCount(ctx, epicKey)
	if err != nil {
		return nil, err
	}

	voted, err := vs.repo.HasVoted(ctx, epicKey, userID)
	if err != nil {
		return nil, err
	}

	return &models.VoteStatus{EpicKey: epicKey, Count: count, HasVoted: voted}, nil
}

// Counts returns vote counts for the given epics. Epics without votes are
// missing from the result and must be read as 0.
func (vs *VoteService) Counts(ctx context.Context, epicKeys []string) (map[string]int, error) {
	keys := normalizeKeys(epicKeys)
	if len(keys) == 0 {
		return nil, ErrNoEpicKeys
	}
	return vs.repo.GetVotesForEpics(ctx, keys)
}

// Board returns one status per requested epic, in request order, with
// zero counts filled in.
func (vs *VoteService) Board(ctx context.Context, epicKeys []string, userID string) ([]models.VoteStatus, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	keys := normalizeKeys(epicKeys)
	if len(keys) == 0 {
		return nil, ErrNoEpicKeys
	}

	counts, err := vs.repo.GetVotesForEpics(ctx, keys)
	if err != nil {
		return nil, err
	}

	mine, err := vs.repo.ListUserVotes(ctx, userID)
	if err != nil {
		return nil, err
	}
	voted := make(map[string]bool, len(mine))
	for _, k := range mine {
		voted[k] = true
	}

	board := make([]models.VoteStatus, 0, len(keys))
	for _, k := range keys {
		board = append(board, models.VoteStatus{
			EpicKey:  k,
			Count:    counts[k],
			HasVoted: voted[k],
		})
	}
	return board, nil
}

// Voters lists the votes cast for an epic
func (vs *VoteService) Voters(ctx context.Context, epicKey string) ([]models.Vote, error) {
	epicKey = strings.TrimSpace(epicKey)
	if epicKey == "" {
		return nil, ErrInvalidEpicKey
	}
	return vs.repo.ListVoters(ctx, epicKey)
}

// UserVotes lists the epics a user voted for
func (vs *VoteService) UserVotes(ctx context.Context, userID string) ([]string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return vs.repo.ListUserVotes(ctx, userID)
}

func normalizePair(epicKey, userID string) (string, string, error) {
	epicKey = strings.TrimSpace(epicKey)
	userID = strings.TrimSpace(userID)

	if epicKey == "" {
		return "", "", ErrInvalidEpicKey
	}
	if userID == "" {
		return "", "", ErrInvalidUserID
	}
	return epicKey, userID, nil
}

// normalizeKeys trims keys, drops blanks and duplicates, keeping order
func normalizeKeys(epicKeys []string) []string {
	seen := make(map[string]struct{}, len(epicKeys))
	keys := make([]string, 0, len(epicKeys))
	for _, k := range epicKeys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
