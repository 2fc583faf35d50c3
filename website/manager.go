package website

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/natefinch/atomic"
)

// Record is one entry in a content sequence of the snapshot document.
// Drama posts fill the channel/file fields, blog entries the content fields.
type Record struct {
	Title       string   `json:"title"`
	Image       string   `json:"image,omitempty"`
	ChannelLink string   `json:"channel_link,omitempty"`
	FilesCount  int      `json:"files_count,omitempty"`
	FileNames   []string `json:"file_names,omitempty"`
	Content     string   `json:"content,omitempty"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Timestamp   string   `json:"timestamp,omitempty"`
	MovedFrom   string   `json:"moved_from,omitempty"`
}

// SearchEntry is one entry of the derived search index.
type SearchEntry struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Category string `json:"category"`
	URL      string `json:"url,omitempty"`
	Image    string `json:"image,omitempty"`
	Excerpt  string `json:"excerpt,omitempty"`
}

// Data is the whole snapshot document consumed by the site renderer.
// search_data is never edited directly; it is recomputed on every save.
type Data struct {
	HomePosts     []Record      `json:"home_posts"`
	OngoingDramas []Record      `json:"ongoing_dramas"`
	BlogPosts     []Record      `json:"blog_posts"`
	AllPosts      []Record      `json:"all_posts"`
	SearchData    []SearchEntry `json:"search_data"`
}

// Manager owns the snapshot file. Every mutation rewrites the whole document
// atomically; the search index is rebuilt before each write.
//
// Note: the content store and this snapshot are written independently, with
// no shared transaction. A crash between the two writes leaves them
// divergent until the next successful write-through.
type Manager struct {
	mu   sync.Mutex
	path string
	data Data

	// sectionURL maps a section to its public website anchor. Injected so
	// the index carries absolute links without this package reading config.
	sectionURL func(string) string
}

// NewManager loads the snapshot document from path, creating an empty
// document if the file does not exist yet.
func NewManager(path string, sectionURL func(string) string) (*Manager, error) {
	if sectionURL == nil {
		sectionURL = func(string) string { return "" }
	}
	m := &Manager{path: path, sectionURL: sectionURL}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read website data file: %w", err)
		}
		m.normalize()
		if err := m.save(); err != nil {
			return nil, err
		}
		return m, nil
	}

	if err := json.Unmarshal(raw, &m.data); err != nil {
		return nil, fmt.Errorf("failed to parse website data file: %w", err)
	}
	m.normalize()
	return m, nil
}

// AddToSection stamps the record with a timestamp if absent, inserts it at
// the front of the section (newest first), rebuilds the search index and
// persists the document.
func (m *Manager) AddToSection(section Section, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	seq := m.sequence(section)
	if seq == nil {
		return fmt.Errorf("unknown section %q", section)
	}

	if rec.Timestamp == "" {
		rec.Timestamp = time.Now().Format(time.RFC3339)
	}
	*seq = append([]Record{rec}, *seq...)

	m.rebuildSearchData()
	return m.save()
}

// MovePost moves the first record whose title matches case-insensitively
// from one section to another, stamping a new timestamp and an origin
// marker. A miss fails without mutating either sequence.
func (m *Manager) MovePost(from, to Section, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	src := m.sequence(from)
	dst := m.sequence(to)
	if src == nil || dst == nil {
		return fmt.Errorf("unknown section in move %q -> %q", from, to)
	}

	idx := -1
	for i, rec := range *src {
		if strings.EqualFold(rec.Title, title) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("no post titled %q in section %s", title, from)
	}

	rec := (*src)[idx]
	*src = append((*src)[:idx], (*src)[idx+1:]...)

	rec.Timestamp = time.Now().Format(time.RFC3339)
	rec.MovedFrom = string(from)
	*dst = append([]Record{rec}, *dst...)

	m.rebuildSearchData()
	return m.save()
}

// UpdateSearchData rebuilds the derived search index and persists the
// document. The rebuild is idempotent for unchanged content.
func (m *Manager) UpdateSearchData() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rebuildSearchData()
	return m.save()
}

// Snapshot returns a deep copy of the current document.
func (m *Manager) Snapshot() Data {
	m.mu.Lock()
	defer m.mu.Unlock()

	copySeq := func(src []Record) []Record {
		out := make([]Record, len(src))
		copy(out, src)
		return out
	}
	out := Data{
		HomePosts:     copySeq(m.data.HomePosts),
		OngoingDramas: copySeq(m.data.OngoingDramas),
		BlogPosts:     copySeq(m.data.BlogPosts),
		AllPosts:      copySeq(m.data.AllPosts),
		SearchData:    make([]SearchEntry, len(m.data.SearchData)),
	}
	copy(out.SearchData, m.data.SearchData)
	return out
}

// rebuildSearchData projects the four content sequences into search entries,
// deduplicating by case-folded title. The section iteration order (ongoing,
// all_posts, blog, home) is the tie-break: the first occurrence wins, later
// duplicates are dropped. Callers must hold the lock.
func (m *Manager) rebuildSearchData() {
	order := []struct {
		section Section
		seq     []Record
	}{
		{SectionOngoing, m.data.OngoingDramas},
		{SectionAllPosts, m.data.AllPosts},
		{SectionBlog, m.data.BlogPosts},
		{SectionHome, m.data.HomePosts},
	}

	total := len(m.data.OngoingDramas) + len(m.data.AllPosts) + len(m.data.BlogPosts) + len(m.data.HomePosts)
	seen := make(map[string]bool, total)
	entries := make([]SearchEntry, 0, total)
	for _, group := range order {
		for _, rec := range group.seq {
			key := strings.ToLower(rec.Title)
			if rec.Title == "" || seen[key] {
				continue
			}
			seen[key] = true

			entry := SearchEntry{
				Title:    rec.Title,
				Type:     group.section.TypeTag(),
				Category: string(group.section),
				URL:      m.sectionURL(string(group.section)),
			}
			if group.section == SectionBlog {
				entry.Excerpt = rec.Excerpt
			} else {
				entry.Image = rec.Image
			}
			entries = append(entries, entry)
		}
	}
	m.data.SearchData = entries
}

// save marshals the whole document and replaces the snapshot file
// atomically, so the file is never left truncated by a crash mid-write.
// Callers must hold the lock.
func (m *Manager) save() error {
	m.normalize()
	raw, err := json.MarshalIndent(m.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode website data: %w", err)
	}
	if err := atomic.WriteFile(m.path, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("failed to write website data file: %w", err)
	}
	return nil
}

// sequence returns the content sequence for a section, nil for unknown ones.
func (m *Manager) sequence(section Section) *[]Record {
	switch section {
	case SectionHome:
		return &m.data.HomePosts
	case SectionOngoing:
		return &m.data.OngoingDramas
	case SectionBlog:
		return &m.data.BlogPosts
	case SectionAllPosts:
		return &m.data.AllPosts
	}
	return nil
}

// normalize replaces nil sequences with empty ones so the JSON document
// always contains all five arrays.
func (m *Manager) normalize() {
	if m.data.HomePosts == nil {
		m.data.HomePosts = []Record{}
	}
	if m.data.OngoingDramas == nil {
		m.data.OngoingDramas = []Record{}
	}
	if m.data.BlogPosts == nil {
		m.data.BlogPosts = []Record{}
	}
	if m.data.AllPosts == nil {
		m.data.AllPosts = []Record{}
	}
	if m.data.SearchData == nil {
		m.data.SearchData = []SearchEntry{}
	}
}
