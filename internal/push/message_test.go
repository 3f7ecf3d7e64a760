package push

import "testing"

func TestSummaryBody(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{
			name:  "single item",
			items: []string{"Milk"},
			want:  "Milk is expiring tomorrow!",
		},
		{
			name:  "two items",
			items: []string{"Milk", "Eggs"},
			want:  "Milk and one other item is expiring tomorrow!",
		},
		{
			name:  "three items",
			items: []string{"Milk", "Eggs", "Bread"},
			want:  "Milk and 2 other items are expiring tomorrow!",
		},
		{
			name:  "five items",
			items: []string{"Milk", "Eggs", "Bread", "Ham", "Cheese"},
			want:  "Milk and 4 other items are expiring tomorrow!",
		},
		{
			name:  "no items",
			items: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SummaryBody(tt.items); got != tt.want {
				t.Errorf("SummaryBody(%v) = %q, want %q", tt.items, got, tt.want)
			}
		})
	}
}

func TestItemBody(t *testing.T) {
	t.Run("formats expiry day-first", func(t *testing.T) {
		got := ItemBody("Milk", "2024-05-02")
		want := "Milk is expiring on 02/05/2024"
		if got != want {
			t.Errorf("ItemBody = %q, want %q", got, want)
		}
	})

	t.Run("falls back to raw value on unparseable date", func(t *testing.T) {
		got := ItemBody("Milk", "soon")
		want := "Milk is expiring on soon"
		if got != want {
			t.Errorf("ItemBody = %q, want %q", got, want)
		}
	})
}
