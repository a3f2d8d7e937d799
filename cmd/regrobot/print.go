package main

import (
	"github.com/favonia/regrobot/internal/pp"
	"github.com/favonia/regrobot/internal/tree"
)

// printTree shows a tree at the notice level so that it survives the quiet mode.
func printTree(ppfmt pp.PP, label string, v tree.Value) {
	switch v.Kind() {
	case tree.KindNull:
		ppfmt.Noticef(pp.EmojiBullet, "%s: (none)", label)

	case tree.KindString, tree.KindNumber:
		text, _ := v.Text()
		ppfmt.Noticef(pp.EmojiBullet, "%s: %s", label, text)

	case tree.KindList:
		if v.Len() == 0 {
			ppfmt.Noticef(pp.EmojiBullet, "%s: (empty)", label)
			return
		}
		ppfmt.Noticef(pp.EmojiBullet, "%s:", label)
		inner := ppfmt.Indent()
		for _, item := range v.Items() {
			printTree(inner, "-", item)
		}

	case tree.KindObject:
		if v.Len() == 0 {
			ppfmt.Noticef(pp.EmojiBullet, "%s: (empty)", label)
			return
		}
		ppfmt.Noticef(pp.EmojiBullet, "%s:", label)
		inner := ppfmt.Indent()
		for _, f := range v.Fields() {
			printTree(inner, f.Key, f.Value)
		}
	}
}
