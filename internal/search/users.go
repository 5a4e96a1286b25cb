package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/todoadmin/internal/domain"
)

// UserMatch is a ranked jump-to-user candidate
type UserMatch struct {
	User  *domain.User
	Score int // Lower is better
}

// RankUsers matches query against each user's name and email and returns
// the users ordered best first. A user matching on both fields keeps its
// better score.
func RankUsers(query string, users []*domain.User) []UserMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(users) == 0 {
		return nil
	}

	// Two targets per user: name then email
	targets := make([]string, 0, len(users)*2)
	for _, u := range users {
		targets = append(targets, u.Name, u.Email)
	}

	best := make(map[int]int) // user index -> score
	for _, rank := range fuzzy.RankFindNormalizedFold(query, targets) {
		userIdx := rank.OriginalIndex / 2
		score := matchScore(strings.ToLower(rank.Target), query, rank.Distance)
		if prev, ok := best[userIdx]; !ok || score < prev {
			best[userIdx] = score
		}
	}

	matches := make([]UserMatch, 0, len(best))
	for idx, score := range best {
		matches = append(matches, UserMatch{User: users[idx], Score: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score < matches[j].Score
		}
		return strings.ToLower(matches[i].User.Name) < strings.ToLower(matches[j].User.Name)
	})

	return matches
}

// BestUser returns the top-ranked user for query
func BestUser(query string, users []*domain.User) (*domain.User, bool) {
	matches := RankUsers(query, users)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0].User, true
}

// matchScore ranks exact, prefix and substring hits ahead of scattered
// subsequence hits. Lower is better.
func matchScore(target, query string, distance int) int {
	switch {
	case target == query:
		return 0
	case strings.HasPrefix(target, query):
		return 10
	case strings.Contains(target, query):
		return 50
	default:
		return 100 + distance
	}
}
