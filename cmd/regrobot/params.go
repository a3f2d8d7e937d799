package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/favonia/regrobot/internal/tree"
)

var (
	errNotKeyValue = errors.New("not of the form key=value")
	errMixedKey    = errors.New("used both as a value and as a group")
)

// paramNode collects the arguments under one key before the tree is built.
type paramNode struct {
	values   []string
	order    []string
	children map[string]*paramNode
}

func newParamNode() *paramNode {
	return &paramNode{values: nil, order: nil, children: map[string]*paramNode{}}
}

func (n *paramNode) child(key string) *paramNode {
	c, ok := n.children[key]
	if !ok {
		c = newParamNode()
		n.children[key] = c
		n.order = append(n.order, key)
	}
	return c
}

func (n *paramNode) build(path string) (tree.Value, error) {
	switch {
	case len(n.values) > 0 && len(n.order) > 0:
		return tree.Null(), fmt.Errorf("%q is %w", path, errMixedKey)
	case len(n.values) == 1:
		return tree.String(n.values[0]), nil
	case len(n.values) > 1:
		return tree.Strings(n.values...), nil
	}

	fields := make([]tree.Field, 0, len(n.order))
	for _, key := range n.order {
		v, err := n.children[key].build(strings.TrimPrefix(path+"."+key, "."))
		if err != nil {
			return tree.Null(), err
		}
		fields = append(fields, tree.Field{Key: key, Value: v})
	}
	return tree.Object(fields...), nil
}

// parseParams turns arguments of the form key=value into an object.
// A key a.b nests b under a, and a repeated key collects its values into a list.
// No arguments give [tree.Null], so that no data is sent.
func parseParams(args []string) (tree.Value, error) {
	if len(args) == 0 {
		return tree.Null(), nil
	}

	root := newParamNode()
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return tree.Null(), fmt.Errorf("%q is %w", arg, errNotKeyValue)
		}

		n := root
		for _, part := range strings.Split(key, ".") {
			if part == "" {
				return tree.Null(), fmt.Errorf("%q is %w", arg, errNotKeyValue)
			}
			n = n.child(part)
		}
		n.values = append(n.values, value)
	}

	return root.build("")
}
