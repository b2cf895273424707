package gallery

import (
	"sort"
	"time"

	"snapvault/pkg/models"
)

// YearGroup holds one calendar year of downloaded media, months descending
type YearGroup struct {
	Year   int
	Months []MonthGroup
}

// MonthGroup holds one month's items, newest first
type MonthGroup struct {
	Month time.Month
	Items []models.DownloadedRecord
}

// Group partitions records by capture year and month. Years and months are
// ordered descending (most recent first) and items within a month are
// sorted newest first; records with equal timestamps keep their input
// order. Pure function: an empty input yields an empty index.
func Group(records []models.DownloadedRecord) []YearGroup {
	byYear := make(map[int]map[time.Month][]models.DownloadedRecord)
	for _, rec := range records {
		year := rec.CapturedAt.Year()
		month := rec.CapturedAt.Month()
		if byYear[year] == nil {
			byYear[year] = make(map[time.Month][]models.DownloadedRecord)
		}
		byYear[year][month] = append(byYear[year][month], rec)
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	groups := make([]YearGroup, 0, len(years))
	for _, year := range years {
		byMonth := byYear[year]

		months := make([]time.Month, 0, len(byMonth))
		for month := range byMonth {
			months = append(months, month)
		}
		sort.Slice(months, func(i, j int) bool { return months[i] > months[j] })

		yg := YearGroup{Year: year, Months: make([]MonthGroup, 0, len(months))}
		for _, month := range months {
			items := byMonth[month]
			sort.SliceStable(items, func(i, j int) bool {
				return items[i].CapturedAt.After(items[j].CapturedAt)
			})
			yg.Months = append(yg.Months, MonthGroup{Month: month, Items: items})
		}
		groups = append(groups, yg)
	}

	return groups
}

// ItemCount returns the number of items across all months of the year
func (g YearGroup) ItemCount() int {
	count := 0
	for _, m := range g.Months {
		count += len(m.Items)
	}
	return count
}
