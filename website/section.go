package website

import "fmt"

// Section identifies one of the four content sequences of the snapshot
// document. It is a closed set; ParseSection rejects anything else.
type Section string

const (
	SectionHome     Section = "home"
	SectionOngoing  Section = "ongoing"
	SectionBlog     Section = "blog"
	SectionAllPosts Section = "all_posts"
)

// ParseSection validates a section name.
func ParseSection(name string) (Section, error) {
	switch Section(name) {
	case SectionHome, SectionOngoing, SectionBlog, SectionAllPosts:
		return Section(name), nil
	}
	return "", fmt.Errorf("unknown section %q", name)
}

// TypeTag returns the search-entry type tag for content in this section.
func (s Section) TypeTag() string {
	if s == SectionBlog {
		return "Article"
	}
	return "Drama"
}
