package pipeline

import (
	"path/filepath"
	"sort"

	"github.com/facette/natsort"

	"github.com/nguyentantai21042004/recode-flow/internal/config"
)

// KeyFunc derives the bucket key of a clip from its file name
type KeyFunc func(name string) string

// PrefixKey buckets clips by the first n characters of their file name.
// Names shorter than n form their own bucket.
func PrefixKey(n int) KeyFunc {
	return func(name string) string {
		runes := []rune(name)
		if len(runes) <= n {
			return name
		}
		return string(runes[:n])
	}
}

// Group is a set of clips from one directory that share a key.
type Group struct {
	Dir     string
	Key     string
	Members []string
}

// Template is the member whose path names the concatenated output
func (g Group) Template() string {
	return g.Members[0]
}

// GroupClips buckets files per directory by key and orders the members of every
// bucket. Groups are returned sorted by directory then key, so the result only
// depends on the set of files given.
func GroupClips(files []string, key KeyFunc, order string) []Group {
	buckets := make(map[string]map[string][]string)
	for _, f := range files {
		dir := filepath.Dir(f)
		if buckets[dir] == nil {
			buckets[dir] = make(map[string][]string)
		}
		k := key(filepath.Base(f))
		buckets[dir][k] = append(buckets[dir][k], f)
	}

	groups := make([]Group, 0, len(buckets))
	for dir, byKey := range buckets {
		for k, members := range byKey {
			sortMembers(members, order)
			groups = append(groups, Group{Dir: dir, Key: k, Members: members})
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Dir != groups[j].Dir {
			return groups[i].Dir < groups[j].Dir
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

func sortMembers(members []string, order string) {
	if order == config.OrderNatural {
		natsort.Sort(members)
		return
	}
	sort.Strings(members)
}
