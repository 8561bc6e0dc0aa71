package docs

import (
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// topicLine matches the "* name: description" lines in readme.md.
var topicLine = regexp.MustCompile(`(?m)^\*\s+([^:]+):`)

func TestReadmeListsEveryTopic(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme) = %v", err)
	}

	listed := make(map[string]bool)
	for _, m := range topicLine.FindAllStringSubmatch(readme, -1) {
		listed[strings.TrimSpace(m[1])] = true
	}

	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no topics found")
	}

	for _, topic := range topics {
		if !listed[topic] {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
	for name := range listed {
		if _, err := GetTopic(name); err != nil {
			t.Errorf("readme.md lists %q but it does not load: %v", name, err)
		}
	}
}

func TestEveryTopicStartsWithTitle(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() = %v", err)
	}
	topics = append(topics, "readme")

	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic(%q) = %v", topic, err)
			}

			source := []byte(content)
			doc := goldmark.DefaultParser().Parse(text.NewReader(source))
			first := doc.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading", topic)
			}
			if heading.Level != 1 {
				t.Errorf("topic %q opens with a level %d heading, want 1", topic, heading.Level)
			}
		})
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Fatal("expected an error for an unknown topic")
	}
}

func TestGetTopicsConcatenates(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) = %v", err)
	}
	for _, want := range []string{"# Data format", "# Chart", "# mNAV"} {
		if !strings.Contains(all, want) {
			t.Errorf("GetTopic(*) is missing %q", want)
		}
	}
}
