package cmps

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// The reference sorts below put the same values through other ordered trees. None of them keeps repeated keys on
// its own, so each one breaks ties its own way.

// seqItem orders by value, then by insertion sequence, so equal values are distinct keys.
type seqItem struct {
	v   int64
	seq int
}

func seqLess(a, b seqItem) bool {
	return a.v < b.v || (a.v == b.v && a.seq < b.seq)
}

func btreeSort(vs []int64) []int64 {
	tr := btree.NewG[seqItem](32, seqLess)
	for i, v := range vs {
		tr.ReplaceOrInsert(seqItem{v, i})
	}
	out := make([]int64, 0, len(vs))
	tr.Ascend(func(it seqItem) bool {
		out = append(out, it.v)
		return true
	})
	return out
}

type llrbItem int64

func (u llrbItem) Less(than llrb.Item) bool {
	return u < than.(llrbItem)
}

// llrbSort relies on InsertNoReplace, which keeps equal items.
func llrbSort(vs []int64) []int64 {
	tr := llrb.New()
	for _, v := range vs {
		tr.InsertNoReplace(llrbItem(v))
	}
	out := make([]int64, 0, len(vs))
	for tr.Len() > 0 {
		out = append(out, int64(tr.DeleteMin().(llrbItem)))
	}
	return out
}

// rbSort keeps a count per distinct value.
func rbSort(vs []int64) []int64 {
	tr := redblacktree.NewWith(utils.Int64Comparator)
	for _, v := range vs {
		c, found := tr.Get(v)
		if !found {
			c = 0
		}
		tr.Put(v, c.(int)+1)
	}
	out := make([]int64, 0, len(vs))
	for it := tr.Iterator(); it.Next(); {
		for range it.Value().(int) {
			out = append(out, it.Key().(int64))
		}
	}
	return out
}
