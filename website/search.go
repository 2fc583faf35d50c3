package website

import (
	"sort"
	"strings"
)

// maxSearchResults caps the number of hits SearchContent returns.
const maxSearchResults = 10

// SearchResult is a scored hit against the snapshot content.
type SearchResult struct {
	Title    string
	Category Section
	URL      string
	Excerpt  string
	Score    int
}

// SearchContent matches the query case-insensitively against title, excerpt
// and body of every record in all four sequences. Hits are scored (title
// substring +10, exact title match +5 more, excerpt substring +3, body
// substring +1), sorted by descending score with ties kept in input order,
// and capped at ten results.
func (m *Manager) SearchContent(query string) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	order := []struct {
		section Section
		seq     []Record
	}{
		{SectionOngoing, m.data.OngoingDramas},
		{SectionAllPosts, m.data.AllPosts},
		{SectionBlog, m.data.BlogPosts},
		{SectionHome, m.data.HomePosts},
	}

	var results []SearchResult
	for _, group := range order {
		for _, rec := range group.seq {
			score := scoreRecord(rec, query)
			if score == 0 {
				continue
			}
			results = append(results, SearchResult{
				Title:    rec.Title,
				Category: group.section,
				URL:      m.sectionURL(string(group.section)),
				Excerpt:  rec.Excerpt,
				Score:    score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results
}

func scoreRecord(rec Record, query string) int {
	score := 0
	title := strings.ToLower(rec.Title)
	if strings.Contains(title, query) {
		score += 10
		if title == query {
			score += 5
		}
	}
	if strings.Contains(strings.ToLower(rec.Excerpt), query) {
		score += 3
	}
	if strings.Contains(strings.ToLower(rec.Content), query) {
		score++
	}
	return score
}
