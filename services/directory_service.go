package services

import "foundation-backend/models"

type directoryEntry interface {
	Member() models.DirectoryMember
}

// DirectoryGroup หนึ่งกลุ่มบนหน้าบุคลากร/ครู
type DirectoryGroup[T any] struct {
	GroupLevel int    `json:"group_level"`
	GroupName  string `json:"group_name"`
	Members    []T    `json:"members"`
}

// DirectoryOrder เรียง group_level ก่อน แล้วตาม sort_order
const DirectoryOrder = "group_level ASC, sort_order ASC, id ASC"

// GroupMembers รวมแถวที่เรียงแล้วเป็นกลุ่มตาม (group_level, group_name) คงลำดับที่เจอครั้งแรก
func GroupMembers[T directoryEntry](items []T) []DirectoryGroup[T] {
	type key struct {
		level int
		name  string
	}
	groups := make([]DirectoryGroup[T], 0)
	index := map[key]int{}
	for _, item := range items {
		m := item.Member()
		k := key{m.GroupLevel, m.GroupName}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, DirectoryGroup[T]{GroupLevel: m.GroupLevel, GroupName: m.GroupName})
		}
		groups[i].Members = append(groups[i].Members, item)
	}
	return groups
}
