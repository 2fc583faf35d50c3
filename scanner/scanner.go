// Package scanner watches group messages for drama-related keywords and
// replies with matching website content. It only runs for messages that are
// not part of an active command session.
package scanner

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"drama-bot/config"
	"drama-bot/utils"
	"drama-bot/website"
)

// ContainsTrigger reports whether a message mentions one of the configured
// drama keywords.
func ContainsTrigger(content string) bool {
	content = strings.ToLower(content)
	for _, trigger := range config.SearchTriggers {
		if strings.Contains(content, trigger) {
			return true
		}
	}
	return false
}

// CandidateTerms strips trigger keywords and punctuation from a message and
// returns the remaining words worth searching for, in message order.
func CandidateTerms(content string) []string {
	content = strings.ToLower(content)
	for _, trigger := range config.SearchTriggers {
		content = strings.ReplaceAll(content, trigger, " ")
	}

	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune("?!.,;:\"'()[]", r) {
			return ' '
		}
		return r
	}, content)

	var terms []string
	for _, word := range strings.Fields(cleaned) {
		if len([]rune(word)) >= 3 {
			terms = append(terms, word)
		}
	}
	return terms
}

// ScanMessage checks a group message for trigger keywords and, on a hit,
// replies with the top matching content. Messages without triggers or
// without matches are ignored silently.
func ScanMessage(s *discordgo.Session, m *discordgo.MessageCreate, site *website.Manager) {
	if !ContainsTrigger(m.Content) {
		return
	}

	results := search(site, m.Content)
	if len(results) == 0 {
		return
	}

	limit := viper.GetInt("MAX_GROUP_RESULTS")
	if limit <= 0 {
		limit = 3
	}
	if len(results) > limit {
		results = results[:limit]
	}

	var b strings.Builder
	b.WriteString("🔍 Found these on the website:\n")
	for _, res := range results {
		fmt.Fprintf(&b, "• **%s** — %s\n", res.Title, res.URL)
	}

	if _, err := s.ChannelMessageSendReply(m.ChannelID, b.String(), m.Reference()); err != nil {
		utils.Warn("scanner", "reply", fmt.Sprintf("failed to reply in channel %s: %v", m.ChannelID, err))
	}
}

// search runs each candidate term against the website index and merges the
// hits, keeping the best score per title.
func search(site *website.Manager, content string) []website.SearchResult {
	var merged []website.SearchResult
	best := make(map[string]int) // lowercase title -> index into merged

	for _, term := range CandidateTerms(content) {
		for _, res := range site.SearchContent(term) {
			key := strings.ToLower(res.Title)
			if idx, ok := best[key]; ok {
				if res.Score > merged[idx].Score {
					merged[idx] = res
				}
				continue
			}
			best[key] = len(merged)
			merged = append(merged, res)
		}
	}
	return merged
}
