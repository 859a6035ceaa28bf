package persistence

import (
	"fmt"
	"strings"

	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/domain/shared"
	"gorm.io/gorm"
)

// orderable columns per query; anything else falls back to created_at to keep
// ORDER BY out of injection reach
func applyFilter(query *gorm.DB, filter shared.Filter, allowedColumns ...string) *gorm.DB {
	orderBy := "created_at"
	for _, col := range allowedColumns {
		if filter.OrderBy == col {
			orderBy = col
			break
		}
	}
	dir := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		dir = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, dir))

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	return query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
}
