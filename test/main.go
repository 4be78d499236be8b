package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/henderiw/timed/pkg/moment"
	"github.com/henderiw/timed/pkg/timed"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
	"k8s.io/klog/v2"
)

var shifts = []struct {
	span   string
	labels map[string]string
}{
	{span: "0..8", labels: map[string]string{"shift": "early", "site": "a"}},
	{span: "8..16", labels: map[string]string{"shift": "late", "site": "a"}},
	{span: "20..24", labels: map[string]string{"shift": "night", "site": "b"}},
}

const rota = `
offset: [0.5]
items:
  - {begin: 2, end: 6, labels: {who: alice}}
  - {begin: 7, end: 10, labels: {who: bob}}
  - {begin: 21, end: 30, labels: {who: carol}}
`

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	var log logr.Logger = klog.Background().WithName("timed")

	if err := run(log); err != nil {
		log.Error(err, "demo failed")
		os.Exit(1)
	}
}

func run(log logr.Logger) error {
	opening := timed.New()
	for _, v := range shifts {
		r, err := moment.ParseSpan(v.span)
		if err != nil {
			return err
		}
		if _, err := timed.NewItemFrom(r, timed.WithSequence(opening), timed.WithLabels(v.labels)); err != nil {
			return err
		}
	}
	opening.PrintItems()

	staff, err := timed.Load([]byte(rota))
	if err != nil {
		return err
	}
	staff.PrintItems()

	for ix := range opening.Intersections(staff) {
		log.Info("intersection",
			"begin", ix.Begin(), "end", ix.End(),
			"shift", ix.Self.Labels().Get("shift"), "who", ix.Other.Labels().Get("who"))
	}
	log.Info("covered", "time", opening.IntersectTime(staff), "after8", opening.IntersectTime(staff, timed.From(8)))

	covered := opening.Intersect(staff)
	req, err := labels.NewRequirement("site", selection.Equals, []string{"a"})
	if err != nil {
		return err
	}
	for _, it := range covered.GetByLabel(labels.NewSelector().Add(*req)) {
		log.V(1).Info("site a", "item", it.String(), "labels", it.Labels().String())
	}

	// a conflicting push is rejected and leaves the sequence untouched
	if _, err := opening.Push(moment.New(12, 18)); err != nil {
		log.Info("rejected", "err", err.Error(), "items", opening.Len())
	}

	out, err := yaml.Marshal(covered)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
