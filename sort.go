// Package Tree_Sort sorts signed integers with an unbalanced binary search tree, and converts them from and to the
// comma separated text callers store them as. Nothing here does I/O.
package Tree_Sort

import (
	"github.com/g-m-twostay/tree-sort/Codec"
	"github.com/g-m-twostay/tree-sort/Random"
	"github.com/g-m-twostay/tree-sort/Trees"
)

type ParseError = Codec.ParseError

// SortIntegers returns vs in non-decreasing order, repeated values included. vs isn't modified.
func SortIntegers(vs []int64) []int64 {
	return Trees.Sort(vs)
}

// Parse comma separated integer text. See Codec.Parse.
func Parse(text string) ([]int64, []ParseError) {
	return Codec.Parse(text)
}

// Serialize vs as comma separated text. See Codec.Serialize.
func Serialize(vs []int64) string {
	return Codec.Serialize(vs)
}

// GenerateRandom returns n values that only depend on seed. See Random.Generate.
func GenerateRandom(n int, seed int64) []int64 {
	return Random.Generate(n, seed)
}
