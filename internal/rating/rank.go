package rating

import "strconv"

// RankLabel renders a nullable rank, with UnknownLabel for unranked entries.
func RankLabel(rank *int) string {
	if rank == nil {
		return UnknownLabel
	}
	return strconv.Itoa(*rank)
}
