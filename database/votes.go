package database

import (
	"context"
	"database/sql"
	"epic-votes/models"
	"errors"
	"fmt"
	"strings"
)

// ==================== VOTE OPERATIONS ====================

// AddVote records a vote. It reports false when the user had already voted
// for the epic; the UNIQUE(epic_key, user_id) constraint decides that, so
// concurrent callers for the same pair get exactly one true.
func (r *Repository) AddVote(ctx context.Context, epicKey, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO votes (epic_key, user_id)
		VALUES (?, ?)
		ON CONFLICT(epic_key, user_id) DO NOTHING
	`, epicKey, userID)
	if err != nil {
		return false, fmt.Errorf("insert vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert vote: %w", err)
	}
	return n > 0, nil
}

// RemoveVote deletes a vote and reports whether one existed
func (r *Repository) RemoveVote(ctx context.Context, epicKey, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM votes
		WHERE epic_key = ? AND user_id = ?
	`, epicKey, userID)
	if err != nil {
		return false, fmt.Errorf("delete vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete vote: %w", err)
	}
	return n > 0, nil
}

func (r *Repository) HasVoted(ctx context.Context, epicKey, userID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM votes
		WHERE epic_key = ? AND user_id = ?
		LIMIT 1
	`, epicKey, userID).Scan(&one)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check vote: %w", err)
	}
	return true, nil
}

// GetVoteCount returns the number of votes for an epic, 0 if it has none
func (r *Repository) GetVoteCount(ctx context.Context, epicKey string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM votes WHERE epic_key = ?
	`, epicKey).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}
	return count, nil
}

// GetVotesForEpics returns vote counts keyed by epic. Epics without votes
// are absent from the map. Duplicate keys are queried once, and inputs
// larger than MaxQueryParams are split across several statements.
func (r *Repository) GetVotesForEpics(ctx context.Context, epicKeys []string) (map[string]int, error) {
	counts := make(map[string]int)

	for _, chunk := range chunkKeys(epicKeys, MaxQueryParams) {
		if err := r.countChunk(ctx, chunk, counts); err != nil {
			return nil, err
		}
	}

	return counts, nil
}

func (r *Repository) countChunk(ctx context.Context, keys []string, into map[string]int) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT epic_key, COUNT(*)
		FROM votes
		WHERE epic_key IN (`+placeholders+`)
		GROUP BY epic_key
	`, args...)
	if err != nil {
		return fmt.Errorf("count votes for epics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var epicKey string
		var count int
		if err := rows.Scan(&epicKey, &count); err != nil {
			return fmt.Errorf("scan vote count: %w", err)
		}
		into[epicKey] = count
	}

	return rows.Err()
}

// ListVoters returns every vote cast for an epic, oldest first
func (r *Repository) ListVoters(ctx context.Context, epicKey string) ([]models.Vote, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT epic_key, user_id, created_at
		FROM votes
		WHERE epic_key = ?
		ORDER BY created_at ASC, rowid ASC
	`, epicKey)
	if err != nil {
		return nil, fmt.Errorf("list voters: %w", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	votes := make([]models.Vote, 0)
	for rows.Next() {
		var vote models.Vote
		if err := rows.Scan(&vote.EpicKey, &vote.UserID, &vote.CreatedAt); err != nil {
			return nil, err
		}
		votes = append(votes, vote)
	}

	return votes, rows.Err()
}

// ListUserVotes returns the keys of all epics a user voted for, sorted
func (r *Repository) ListUserVotes(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT epic_key
		FROM votes
		WHERE user_id = ?
		ORDER BY epic_key ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user votes: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}
