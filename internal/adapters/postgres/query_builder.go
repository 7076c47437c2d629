package postgres

import (
	"fmt"
	"strings"

	"listing-service/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: make([]string, 0),
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// build assembles the final WHERE clause. An empty clause means every
// row matches.
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyFilters compiles the normalized listing filters into a WHERE clause
// with positional args. Zero-valued filters emit no condition at all.
func applyFilters(filters domain.PropertyFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	// Substring search against the pre-folded columns; one arg shared by
	// both branches. The input is already lowercased and stripped of
	// diacritics by the criteria normalizer.
	if filters.Search != "" {
		condition := fmt.Sprintf(
			"(p.title_normalized LIKE $%d OR p.location_normalized LIKE $%d)",
			qb.argId, qb.argId,
		)
		qb.conditions = append(qb.conditions, condition)
		qb.args = append(qb.args, "%"+filters.Search+"%")
		qb.argId++
	}

	// "all" disables the category constraint, same as an empty value.
	if filters.Type != "" && filters.Type != "all" {
		qb.addCondition("%s = $%d", "p.type", filters.Type)
	}

	qb.AddFloatFilter("p.price", filters.PriceMin, filters.PriceMax)
	qb.AddFloatFilter("p.area", filters.AreaMin, filters.AreaMax)

	// Room counts are set membership; the "5+" option widens the set to an
	// open upper range, so the two branches are OR-ed.
	if filters.HasRoomsFilter() {
		branches := make([]string, 0, 2)
		if len(filters.Rooms) > 0 {
			branches = append(branches, fmt.Sprintf("p.rooms = ANY($%d)", qb.argId))
			qb.args = append(qb.args, filters.Rooms)
			qb.argId++
		}
		if filters.RoomsFivePlus {
			branches = append(branches, "p.rooms >= 5")
		}
		qb.conditions = append(qb.conditions, "("+strings.Join(branches, " OR ")+")")
	}

	return qb.build()
}
