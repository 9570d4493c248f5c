package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBudgetListFilter(t *testing.T) {
	cases := []struct {
		name        string
		year, month int
		want        bson.M
	}{
		{
			name: "no narrowing",
			want: bson.M{"user_id": "u1"},
		},
		{
			name: "year only",
			year: 2024,
			want: bson.M{"user_id": "u1", "year": 2024},
		},
		{
			name:  "month only",
			month: 3,
			want:  bson.M{"user_id": "u1", "month": 3},
		},
		{
			name:  "year and month",
			year:  2024,
			month: 3,
			want:  bson.M{"user_id": "u1", "year": 2024, "month": 3},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, budgetListFilter("u1", tc.year, tc.month))
		})
	}
}
