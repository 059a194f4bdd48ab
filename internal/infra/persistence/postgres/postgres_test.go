package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type foreignKey struct {
	Parent       string `gorm:"column:parent"`
	ChildColumn  string `gorm:"column:child_column"`
	ParentColumn string `gorm:"column:parent_column"`
}

func foreignKeysOf(t *testing.T, table string) []foreignKey {
	t.Helper()

	db := newTestDB(t)

	var fks []foreignKey
	err := db.Raw(`SELECT "table" AS parent, "from" AS child_column, "to" AS parent_column FROM pragma_foreign_key_list('` + table + `')`).
		Scan(&fks).Error
	require.NoError(t, err)

	return fks
}

func TestMigrate_ForeignKeysReferenceParents(t *testing.T) {
	tests := []struct {
		table string
		want  []foreignKey
	}{
		{
			table: "orders",
			want: []foreignKey{
				{Parent: "customers", ChildColumn: "customer_id", ParentColumn: "customer_id"},
				{Parent: "platforms", ChildColumn: "platform_id", ParentColumn: "platform_id"},
			},
		},
		{
			table: "deliveries",
			want: []foreignKey{
				{Parent: "orders", ChildColumn: "order_id", ParentColumn: "order_id"},
			},
		},
		{table: "customers"},
		{table: "platforms"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			got := foreignKeysOf(t, tt.table)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}
