package recommend

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arjun/studyflow/internal/plan"
)

// RelationType classifies how two topics relate.
type RelationType string

const (
	RelationSequential    RelationType = "sequential"
	RelationPrerequisite  RelationType = "prerequisite"
	RelationComplementary RelationType = "complementary"
	RelationContrasting   RelationType = "contrasting"
)

// TopicRelationship is one classified topic pair.
type TopicRelationship struct {
	TopicA   string       `json:"topic_a"`
	TopicB   string       `json:"topic_b"`
	Type     RelationType `json:"type"`
	Strength float64      `json:"strength"` // 0-1
}

// minRelationStrength filters out weak classifications.
const minRelationStrength = 0.5

// relationClassifier is one rule in the classification chain. It returns
// ("", 0) when the rule doesn't apply.
type relationClassifier interface {
	Name() string
	Classify(a, b string) (RelationType, float64)
}

// defaultRelationClassifiers returns the chain in priority order; the
// first match wins.
func defaultRelationClassifiers() []relationClassifier {
	return []relationClassifier{
		&sequentialClassifier{},
		&prerequisiteClassifier{},
		&complementaryClassifier{},
		&contrastingClassifier{},
	}
}

// RelatedTopics pairwise-compares every topic pair in the plan (O(n²)) and
// keeps classified relationships above the strength cutoff, strongest
// first.
func RelatedTopics(p *plan.StudyPlan) []TopicRelationship {
	classifiers := defaultRelationClassifiers()

	var out []TopicRelationship
	for i := 0; i < len(p.Topics); i++ {
		for j := i + 1; j < len(p.Topics); j++ {
			a, b := p.Topics[i], p.Topics[j]
			for _, c := range classifiers {
				rel, strength := c.Classify(a, b)
				if rel == "" {
					continue
				}
				if strength > minRelationStrength {
					out = append(out, TopicRelationship{
						TopicA:   a,
						TopicB:   b,
						Type:     rel,
						Strength: strength,
					})
				}
				break
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Strength != out[j].Strength {
			return out[i].Strength > out[j].Strength
		}
		if out[i].TopicA != out[j].TopicA {
			return out[i].TopicA < out[j].TopicA
		}
		return out[i].TopicB < out[j].TopicB
	})
	return out
}

// sequentialClassifier matches topics whose chapter/part/section/unit
// indices differ by exactly one.
type sequentialClassifier struct{}

var indexedTopicRe = regexp.MustCompile(`(?i)(?:chapter|part|section|unit)\s*(\d+)|(\d+)\s*$`)

func (sequentialClassifier) Name() string { return "sequential" }

func (sequentialClassifier) Classify(a, b string) (RelationType, float64) {
	ia, oka := topicIndex(a)
	ib, okb := topicIndex(b)
	if !oka || !okb {
		return "", 0
	}
	diff := ia - ib
	if diff == 1 || diff == -1 {
		return RelationSequential, 0.9
	}
	return "", 0
}

func topicIndex(topic string) (int, bool) {
	m := indexedTopicRe.FindStringSubmatch(topic)
	if m == nil {
		return 0, false
	}
	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	n := 0
	for _, r := range digits {
		n = n*10 + int(r-'0')
	}
	return n, true
}

// prerequisiteClassifier matches an introductory topic paired with an
// advanced/application one.
type prerequisiteClassifier struct{}

var (
	basicKeywords    = []string{"basic", "intro", "fundamental", "foundation", "beginner"}
	advancedKeywords = []string{"advanced", "application", "applied", "complex", "expert"}
)

func (prerequisiteClassifier) Name() string { return "prerequisite" }

func (prerequisiteClassifier) Classify(a, b string) (RelationType, float64) {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if (containsAny(la, basicKeywords) && containsAny(lb, advancedKeywords)) ||
		(containsAny(lb, basicKeywords) && containsAny(la, advancedKeywords)) {
		return RelationPrerequisite, 0.8
	}
	return "", 0
}

// complementaryClassifier matches topics sharing a meaningful word.
type complementaryClassifier struct{}

func (complementaryClassifier) Name() string { return "complementary" }

func (complementaryClassifier) Classify(a, b string) (RelationType, float64) {
	wordsA := topicWords(a)
	for w := range topicWords(b) {
		if wordsA[w] {
			return RelationComplementary, 0.6
		}
	}
	return "", 0
}

// topicWords returns the lowercased words of a topic longer than three
// characters.
func topicWords(topic string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(strings.ToLower(topic), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if len(w) > 3 {
			words[w] = true
		}
	}
	return words
}

// contrastingClassifier matches pairs whose combined text signals a
// comparison.
type contrastingClassifier struct{}

var contrastKeywords = []string{" vs ", " vs. ", "versus", "compared", "contrast"}

func (contrastingClassifier) Name() string { return "contrasting" }

func (contrastingClassifier) Classify(a, b string) (RelationType, float64) {
	combined := " " + strings.ToLower(a) + " " + strings.ToLower(b) + " "
	if containsAny(combined, contrastKeywords) {
		return RelationContrasting, 0.7
	}
	return "", 0
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
