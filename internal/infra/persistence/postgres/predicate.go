package postgres

import (
	"strings"
	"time"

	"salesboard/internal/domain/entity"

	"gorm.io/gorm"
)

const deliveryJoin = "JOIN deliveries ON deliveries.order_id = orders.order_id"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// predicate is one SQL fragment of the report WHERE clause.
type predicate struct {
	sql  string
	args []any
}

// salesPredicates is the composed filter of the sales report.
// Each supplied filter contributes exactly one predicate; absent filters contribute nothing.
type salesPredicates struct {
	predicates    []predicate
	needsDelivery bool
}

func buildSalesPredicates(filter entity.SalesFilter) *salesPredicates {
	p := &salesPredicates{}

	if filter.StartDate != nil && filter.EndDate != nil {
		// Half-open range on the day after EndDate keeps the end date inclusive.
		p.add("orders.date_of_sale >= ? AND orders.date_of_sale < ?",
			truncateDay(*filter.StartDate), truncateDay(*filter.EndDate).AddDate(0, 0, 1))
	}
	if v := strings.TrimSpace(filter.Category); v != "" {
		p.add("LOWER(orders.category) = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(filter.Platform); v != "" {
		p.add("LOWER(platforms.platform_name) = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(filter.DeliveryStatus); v != "" {
		p.needsDelivery = true
		p.add("LOWER(deliveries.delivery_status) = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(filter.State); v != "" {
		p.needsDelivery = true
		p.add(`LOWER(deliveries.address) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(v))+"%")
	}

	return p
}

func (p *salesPredicates) add(sql string, args ...any) {
	p.predicates = append(p.predicates, predicate{sql: sql, args: args})
}

// Len reports the number of fragments in the composed filter.
func (p *salesPredicates) Len() int {
	return len(p.predicates)
}

// Scope applies the join and every fragment; GORM ANDs chained Where calls.
func (p *salesPredicates) Scope(db *gorm.DB) *gorm.DB {
	if p.needsDelivery {
		db = db.Joins(deliveryJoin)
	}
	for _, pred := range p.predicates {
		db = db.Where(pred.sql, pred.args...)
	}

	return db
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
