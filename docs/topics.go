// Package docs embeds the user documentation of alloc.
//
// readme.md is the entry page. Its "* name: description" lines are the index
// of the other topics, one markdown file per topic.
package docs

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed *.md
var files embed.FS

// Readme is the name of the entry page.
const Readme = "readme"

// ErrUnknownTopic is returned for a topic missing from the index.
var ErrUnknownTopic = errors.New("unknown topic")

// Topic is an entry of the readme index.
type Topic struct {
	Name        string
	Description string
}

// Index returns the topics listed in the readme, in reading order.
func Index() []Topic {
	readme, err := files.ReadFile(Readme + ".md")
	if err != nil {
		return nil
	}
	var index []Topic
	for line := range strings.Lines(string(readme)) {
		item, ok := strings.CutPrefix(strings.TrimSpace(line), "* ")
		if !ok {
			continue
		}
		name, desc, ok := strings.Cut(item, ":")
		if !ok || strings.ContainsAny(name, " `") {
			continue
		}
		index = append(index, Topic{Name: name, Description: strings.TrimSpace(desc)})
	}
	return index
}

// Names returns the names of the indexed topics.
func Names() []string {
	var names []string
	for _, t := range Index() {
		names = append(names, t.Name)
	}
	return names
}

// Read returns the markdown of a topic, or of the readme.
func Read(name string) (string, error) {
	if name != Readme && !indexed(name) {
		return "", fmt.Errorf("%q: %w, try one of %s", name, ErrUnknownTopic, strings.Join(Names(), ", "))
	}
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("reading topic %q: %w", name, err)
	}
	return string(content), nil
}

// Join returns the markdown of several topics one after the other.
func Join(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := Read(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func indexed(name string) bool {
	for _, t := range Index() {
		if t.Name == name {
			return true
		}
	}
	return false
}
