package catalog

import (
	"math"
	"sort"

	"bookr/internal/entity"
)

// Aggregate computes the admin dashboard statistics: user and book totals,
// average recommendations per user, and a per-user recommendation count
// sorted descending. Ties between equal counts are left in any order.
func Aggregate(users []entity.DbUser, books []entity.DbBook) entity.StatsData {
	countByUser := make(map[uint]int, len(users))
	for _, book := range books {
		countByUser[book.RecommenderID]++
	}

	perUser := make([]entity.UserBookCount, 0, len(users))
	for _, user := range users {
		perUser = append(perUser, entity.UserBookCount{
			Name:  user.Name,
			Count: countByUser[user.ID],
		})
	}
	sort.Slice(perUser, func(i, j int) bool {
		return perUser[i].Count > perUser[j].Count
	})

	average := 0.0
	if len(users) > 0 {
		average = math.Round(float64(len(books))/float64(len(users))*100) / 100
	}

	return entity.StatsData{
		UserCount:      len(users),
		BookCount:      len(books),
		AveragePerUser: average,
		PerUserCounts:  perUser,
	}
}
