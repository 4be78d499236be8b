package timed

import (
	"fmt"

	"github.com/henderiw/timed/pkg/moment"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/labels"
)

// sequenceDoc is the YAML form of a sequence:
//
//	offset: [10, 1.1, 0.01]
//	items:
//	  - begin: 0
//	    end: 10
//	    labels: {kind: shift}
type sequenceDoc struct {
	Offset []any     `yaml:"offset,omitempty"`
	Items  []itemDoc `yaml:"items"`
}

type itemDoc struct {
	Begin  any               `yaml:"begin"`
	End    any               `yaml:"end"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// Load builds a sequence from its YAML form.
func Load(data []byte) (*Sequence, error) {
	s := New()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// MarshalYAML encodes the raw item times, their labels and the offset
// coefficients.
func (s *Sequence) MarshalYAML() (interface{}, error) {
	doc := sequenceDoc{Items: make([]itemDoc, 0, s.Len())}
	for _, c := range s.Coefficients() {
		doc.Offset = append(doc.Offset, c)
	}
	for it := range s.All() {
		doc.Items = append(doc.Items, itemDoc{
			Begin:  it.span.Start,
			End:    it.span.Stop,
			Labels: it.labels,
		})
	}
	return doc, nil
}

// UnmarshalYAML replaces the content of s. On error s is left unchanged.
func (s *Sequence) UnmarshalYAML(value *yaml.Node) error {
	doc := sequenceDoc{}
	if err := value.Decode(&doc); err != nil {
		return err
	}

	tmp := New()
	coefficients := make([]float64, 0, len(doc.Offset))
	for i, v := range doc.Offset {
		c, ok := moment.Numeric(v)
		if !ok {
			return fmt.Errorf("%w: offset coefficient %d: %v", ErrInvalidType, i, v)
		}
		coefficients = append(coefficients, c)
	}
	if err := tmp.OffsetBy(coefficients...); err != nil {
		return err
	}
	for i, d := range doc.Items {
		var l labels.Set
		if d.Labels != nil {
			l = labels.Set(d.Labels)
		}
		it, err := NewItemFromValues(d.Begin, d.End, WithLabels(l))
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if _, err := tmp.Push(it); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	for it := range s.All() {
		it.Remove()
	}
	for it := range tmp.All() {
		it.Remove()
		s.items.PushBack(&it.node)
		it.seq = s
	}
	s.offset = tmp.offset
	return nil
}
